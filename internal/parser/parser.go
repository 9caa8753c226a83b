package parser

import (
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/jenkins-x-apps/jx-app-cobertura/internal/coverage"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/filter"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/logging"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/report"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const (
	// ParserName identifies results created by the CoberturaParser.
	ParserName = "CoberturaParser"

	// 9999-12-31T23:59:59Z
	maxTimestamp = 253402300799
)

var (
	logger = logging.AppLogger().WithFields(log.Fields{"component": "cobertura-parser"})
)

// CoberturaParser builds the coverage model of a Cobertura report.
type CoberturaParser struct {
	assemblyFilter filter.Filter
	classFilter    filter.Filter
	fileFilter     filter.Filter
	workers        int
}

// NewCoberturaParser creates a parser applying the given filters. Nil filters include everything.
// workers limits the number of classes processed concurrently, values < 1 default to GOMAXPROCS.
func NewCoberturaParser(assemblyFilter, classFilter, fileFilter filter.Filter, workers int) *CoberturaParser {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &CoberturaParser{
		assemblyFilter: orAcceptAll(assemblyFilter),
		classFilter:    orAcceptAll(classFilter),
		fileFilter:     orAcceptAll(fileFilter),
		workers:        workers,
	}
}

func orAcceptAll(f filter.Filter) filter.Filter {
	if f == nil {
		return filter.AcceptAll()
	}
	return f
}

// Name returns the name of the parser.
func (p *CoberturaParser) Name() string {
	return ParserName
}

// Parse builds the coverage model of the given report.
func (p *CoberturaParser) Parse(report *report.Coverage) (*coverage.ParserResult, error) {
	if report == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "report must not be nil")
	}

	names, err := assemblyNames(report.Packages)
	if err != nil {
		return nil, err
	}
	names = lo.Filter(names, func(name string, _ int) bool {
		return p.assemblyFilter.IsIncluded(name)
	})
	sort.Strings(names)

	assemblies := make([]*coverage.Assembly, 0, len(names))
	for _, name := range names {
		assembly, err := p.processAssembly(report.Packages, name)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to process assembly '%s'", name)
		}
		if len(assembly.Classes()) == 0 && p.hasCustomClassOrFileFilters() {
			logger.Debugf("skipping assembly '%s', all classes have been filtered", name)
			continue
		}
		assemblies = append(assemblies, assembly)
	}

	result := coverage.NewParserResult(ParserName, true, assemblies)
	if report.Sources != nil {
		for _, source := range report.Sources.Sources {
			result.AddSourceDirectory(source)
		}
	}
	if timestamp, ok := parseTimestamp(report); ok {
		result.SetTimeStamp(timestamp)
	}

	logger.Infof("parsed %d assemblies with %d classes", len(result.Assemblies()), result.NumberOfClasses())
	return result, nil
}

func (p *CoberturaParser) hasCustomClassOrFileFilters() bool {
	return p.classFilter.HasCustomFilters() || p.fileFilter.HasCustomFilters()
}

func assemblyNames(packages []report.Package) ([]string, error) {
	names := make([]string, 0, len(packages))
	for _, pkg := range packages {
		name, err := requireAttribute("package", "name", pkg.Name)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return lo.Uniq(names), nil
}

// parseTimestamp reads the epoch seconds of the coverage element. The timestamp is optional, so
// every failure just yields no timestamp.
func parseTimestamp(report *report.Coverage) (time.Time, bool) {
	if report.Sources == nil {
		return time.Time{}, false
	}
	seconds, err := strconv.ParseInt(report.Timestamp, 10, 64)
	if err != nil {
		logger.Debugf("ignoring timestamp '%s': %s", report.Timestamp, err)
		return time.Time{}, false
	}
	if seconds > maxTimestamp {
		logger.Debugf("ignoring timestamp '%s': out of range", report.Timestamp)
		return time.Time{}, false
	}
	return time.Unix(seconds, 0).Local(), true
}
