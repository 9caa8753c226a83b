package coverage

import (
	"sort"
	"time"
)

// ParserResult is the root of the coverage model built from one report.
type ParserResult struct {
	// ParserName identifies the parser which produced the result.
	ParserName string
	// SupportsLineCoverage is true if the result holds line level coverage, not only method metrics.
	SupportsLineCoverage bool
	SourceDirectories    []string
	MinimumTimeStamp     *time.Time
	MaximumTimeStamp     *time.Time

	assemblies []*Assembly
}

// NewParserResult creates a ParserResult holding the given assemblies ordered by name.
func NewParserResult(parserName string, supportsLineCoverage bool, assemblies []*Assembly) *ParserResult {
	sorted := make([]*Assembly, len(assemblies))
	copy(sorted, assemblies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return &ParserResult{
		ParserName:           parserName,
		SupportsLineCoverage: supportsLineCoverage,
		SourceDirectories:    []string{},
		assemblies:           sorted,
	}
}

// Assemblies returns the assemblies ordered by name.
func (r *ParserResult) Assemblies() []*Assembly {
	return r.assemblies
}

// Assembly returns the assembly with the given name or nil.
func (r *ParserResult) Assembly(name string) *Assembly {
	i := sort.Search(len(r.assemblies), func(i int) bool {
		return r.assemblies[i].Name >= name
	})
	if i < len(r.assemblies) && r.assemblies[i].Name == name {
		return r.assemblies[i]
	}
	return nil
}

// AddSourceDirectory appends a source root directory.
func (r *ParserResult) AddSourceDirectory(dir string) {
	r.SourceDirectories = append(r.SourceDirectories, dir)
}

// SetTimeStamp sets minimum and maximum timestamp to t.
func (r *ParserResult) SetTimeStamp(t time.Time) {
	min, max := t, t
	r.MinimumTimeStamp = &min
	r.MaximumTimeStamp = &max
}

// NumberOfClasses returns the total number of classes of all assemblies.
func (r *ParserResult) NumberOfClasses() int {
	count := 0
	for _, a := range r.assemblies {
		count += len(a.Classes())
	}
	return count
}
