package coverage

import (
	"github.com/shopspring/decimal"
)

// LineVisitStatus is the coverage state of a single line.
type LineVisitStatus int

const (
	// NotCoverable marks lines the report holds no data for.
	NotCoverable LineVisitStatus = iota
	// NotCovered lines have not been hit.
	NotCovered
	// PartiallyCovered lines have been hit, but at least one of their branches has not.
	PartiallyCovered
	// Covered lines have been hit and have no unvisited branch.
	Covered
)

func (s LineVisitStatus) String() string {
	switch s {
	case NotCovered:
		return "NotCovered"
	case PartiallyCovered:
		return "PartiallyCovered"
	case Covered:
		return "Covered"
	default:
		return "NotCoverable"
	}
}

// NoCoverage is the line coverage value of lines the report holds no data for.
const NoCoverage = -1

// CodeFile is the coverage of one source file within a class.
//
// Line coverage and line visit status are indexed by line number, index 0 is unused.
type CodeFile struct {
	Path string

	lineCoverage    []int
	lineVisitStatus []LineVisitStatus
	branches        map[int][]Branch
	methodMetrics   []MethodMetric
	codeElements    []CodeElement
}

// NewCodeFile creates a CodeFile. lineCoverage and lineVisitStatus must have the same length.
func NewCodeFile(path string, lineCoverage []int, lineVisitStatus []LineVisitStatus, branches map[int][]Branch) *CodeFile {
	if branches == nil {
		branches = map[int][]Branch{}
	}
	return &CodeFile{
		Path:            path,
		lineCoverage:    lineCoverage,
		lineVisitStatus: lineVisitStatus,
		branches:        branches,
	}
}

// LineCoverage returns the hit count per line, NoCoverage for lines without data.
func (f *CodeFile) LineCoverage() []int {
	return f.lineCoverage
}

// LineVisitStatus returns the visit status per line.
func (f *CodeFile) LineVisitStatus() []LineVisitStatus {
	return f.lineVisitStatus
}

// Branches returns the branches by line number.
func (f *CodeFile) Branches() map[int][]Branch {
	return f.branches
}

// BranchesOfLine returns the branches of the given line, nil if the line has none.
func (f *CodeFile) BranchesOfLine(line int) []Branch {
	return f.branches[line]
}

// MethodMetrics returns the metrics of the methods of this file in report order.
func (f *CodeFile) MethodMetrics() []MethodMetric {
	return f.methodMetrics
}

// AddMethodMetric appends a method metric.
func (f *CodeFile) AddMethodMetric(m MethodMetric) {
	f.methodMetrics = append(f.methodMetrics, m)
}

// CodeElements returns the code elements of this file in report order.
func (f *CodeFile) CodeElements() []CodeElement {
	return f.codeElements
}

// AddCodeElement appends a code element.
func (f *CodeFile) AddCodeElement(e CodeElement) {
	f.codeElements = append(f.codeElements, e)
}

// CoverableLines returns the number of lines with coverage data.
func (f *CodeFile) CoverableLines() int {
	count := 0
	for _, s := range f.lineVisitStatus {
		if s != NotCoverable {
			count++
		}
	}
	return count
}

// CoveredLines returns the number of lines which have been hit.
func (f *CodeFile) CoveredLines() int {
	count := 0
	for _, s := range f.lineVisitStatus {
		if s == Covered || s == PartiallyCovered {
			count++
		}
	}
	return count
}

// TotalBranches returns the number of branches of all lines.
func (f *CodeFile) TotalBranches() int {
	count := 0
	for _, b := range f.branches {
		count += len(b)
	}
	return count
}

// CoveredBranches returns the number of visited branches of all lines.
func (f *CodeFile) CoveredBranches() int {
	count := 0
	for _, b := range f.branches {
		count += CountVisited(b)
	}
	return count
}

// CoverageQuota returns the percentage of covered lines among the coverable lines of the inclusive
// range [firstLine, lastLine], truncated to one decimal place. The result is invalid if the range
// lies outside the file or contains no coverable line.
func (f *CodeFile) CoverageQuota(firstLine, lastLine int) decimal.NullDecimal {
	if firstLine < 0 || lastLine >= len(f.lineVisitStatus) || firstLine > lastLine {
		return decimal.NullDecimal{}
	}

	coverable, covered := 0, 0
	for _, s := range f.lineVisitStatus[firstLine : lastLine+1] {
		if s == NotCoverable {
			continue
		}
		coverable++
		if s != NotCovered {
			covered++
		}
	}
	if coverable == 0 {
		return decimal.NullDecimal{}
	}

	quota := decimal.NewFromInt(int64(covered)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(coverable)), 8).
		Truncate(1)
	return decimal.NullDecimal{Decimal: quota, Valid: true}
}
