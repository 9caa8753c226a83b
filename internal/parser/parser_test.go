package parser

import (
	"io/ioutil"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/jenkins-x-apps/jx-app-cobertura/internal/coverage"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/filter"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/report"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadReport(t *testing.T, name string) *report.Coverage {
	data, err := ioutil.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	doc, err := report.Decode(data)
	require.NoError(t, err)
	return doc
}

func parse(t *testing.T, doc *report.Coverage, assemblyFilter, classFilter, fileFilter []string) *coverage.ParserResult {
	parser := NewCoberturaParser(newFilter(t, assemblyFilter), newFilter(t, classFilter), newFilter(t, fileFilter), 4)
	result, err := parser.Parse(doc)
	require.NoError(t, err)
	return result
}

func newFilter(t *testing.T, patterns []string) filter.Filter {
	f, err := filter.NewDefaultFilter(patterns)
	require.NoError(t, err)
	return f
}

func assemblyNamesOf(result *coverage.ParserResult) []string {
	names := []string{}
	for _, a := range result.Assemblies() {
		names = append(names, a.Name)
	}
	return names
}

func classNamesOf(assembly *coverage.Assembly) []string {
	names := []string{}
	for _, c := range assembly.Classes() {
		names = append(names, c.Name)
	}
	return names
}

func classNamed(t *testing.T, assembly *coverage.Assembly, name string) *coverage.Class {
	for _, c := range assembly.Classes() {
		if c.Name == name {
			return c
		}
	}
	require.FailNow(t, "class not found", name)
	return nil
}

func stringPtr(s string) *string {
	return &s
}

func assertDecimal(t *testing.T, expected string, actual decimal.NullDecimal) {
	require.True(t, actual.Valid, "expected %s, got no value", expected)
	assert.True(t, decimal.RequireFromString(expected).Equal(actual.Decimal), "expected %s, got %s", expected, actual.Decimal)
}

func TestParseReport(t *testing.T) {
	result := parse(t, loadReport(t, "cobertura.xml"), nil, nil, nil)

	assert.Equal(t, ParserName, result.ParserName)
	assert.True(t, result.SupportsLineCoverage)
	assert.Equal(t, []string{"Other", "Test"}, assemblyNamesOf(result))
	assert.Equal(t, []string{"Test.Empty", "Test.Merged", "Test.Partial", "Test.Program"}, classNamesOf(result.Assembly("Test")))
	assert.Equal(t, []string{"Other.Util"}, classNamesOf(result.Assembly("Other")))
	assert.Equal(t, []string{"/build/src/", "/build/gen/"}, result.SourceDirectories)

	require.NotNil(t, result.MinimumTimeStamp)
	require.NotNil(t, result.MaximumTimeStamp)
	assert.True(t, time.Unix(1570000000, 0).Equal(*result.MinimumTimeStamp))
	assert.Equal(t, *result.MinimumTimeStamp, *result.MaximumTimeStamp)
	assert.Equal(t, time.Local, result.MinimumTimeStamp.Location())
}

func TestParseNestedClassFragments(t *testing.T) {
	result := parse(t, loadReport(t, "cobertura.xml"), nil, nil, nil)
	class := classNamed(t, result.Assembly("Test"), "Test.Program")

	assert.Equal(t, result.Assembly("Test"), class.Assembly)
	require.Len(t, class.Files(), 1)
	file := class.Files()[0]
	assert.Equal(t, "Program.cs", file.Path)

	// lines of the nested state machine class are part of the file, compiler generated classes are not
	require.Len(t, file.LineCoverage(), 26)
	require.Len(t, file.LineVisitStatus(), 26)
	assert.Equal(t, 5, file.LineCoverage()[10])
	assert.Equal(t, coverage.PartiallyCovered, file.LineVisitStatus()[10])
	assert.Equal(t, 0, file.LineCoverage()[11])
	assert.Equal(t, coverage.NotCovered, file.LineVisitStatus()[11])
	assert.Equal(t, coverage.Covered, file.LineVisitStatus()[12])
	assert.Equal(t, coverage.Covered, file.LineVisitStatus()[21])
	for _, line := range []int{0, 1, 9, 13, 15, 19, 22, 24} {
		assert.Equal(t, coverage.NoCoverage, file.LineCoverage()[line], "line %d", line)
		assert.Equal(t, coverage.NotCoverable, file.LineVisitStatus()[line], "line %d", line)
	}

	assert.Equal(t, []coverage.Branch{{Identifier: "10_0", Visits: 1}, {Identifier: "10_1", Visits: 0}}, file.BranchesOfLine(10))
}

func TestParseMethodMetrics(t *testing.T) {
	result := parse(t, loadReport(t, "cobertura.xml"), nil, nil, nil)
	file := classNamed(t, result.Assembly("Test"), "Test.Program").Files()[0]

	metrics := file.MethodMetrics()
	require.Len(t, metrics, 4)

	main := metrics[0]
	assert.Equal(t, "Main(System.String[])", main.FullName)
	assert.Equal(t, "Main(...)", main.ShortName)
	assert.Equal(t, 10, main.Line)
	require.Len(t, main.Metrics, 3)
	assert.Equal(t, "Cyclomatic complexity", main.Metrics[0].Name)
	assert.Equal(t, coverage.CodeQuality, main.Metrics[0].Type)
	assert.Equal(t, coverage.LowerIsBetter, main.Metrics[0].MergeOrder)
	assertDecimal(t, "2", main.Metrics[0].Value)
	assert.Equal(t, "Line coverage", main.Metrics[1].Name)
	assert.Equal(t, coverage.CoveragePercentual, main.Metrics[1].Type)
	assertDecimal(t, "50", main.Metrics[1].Value)
	assert.Equal(t, "Branch coverage", main.Metrics[2].Name)
	assertDecimal(t, "25", main.Metrics[2].Value)

	unused := metrics[1]
	assert.Equal(t, "Unused()", unused.FullName)
	assert.Equal(t, "Unused()", unused.ShortName)
	assert.False(t, unused.HasLine())
	require.Len(t, unused.Metrics, 3)
	assert.Equal(t, "Cyclomatic complexity", unused.Metrics[0].Name)
	for _, m := range unused.Metrics {
		assert.False(t, m.Value.Valid, m.Name)
	}

	run := metrics[2]
	assert.Equal(t, "Run()", run.FullName)
	assert.Equal(t, 20, run.Line)
	assertDecimal(t, "1.5", run.Metrics[0].Value)
}

func TestParseCodeElements(t *testing.T) {
	result := parse(t, loadReport(t, "cobertura.xml"), nil, nil, nil)
	file := classNamed(t, result.Assembly("Test"), "Test.Program").Files()[0]

	elements := file.CodeElements()
	require.Len(t, elements, 3)

	assert.Equal(t, "Main(...)", elements[0].Name)
	assert.Equal(t, "Main(System.String[])", elements[0].FullName)
	assert.Equal(t, coverage.Method, elements[0].Type)
	assert.Equal(t, 10, elements[0].FirstLine)
	assert.Equal(t, 12, elements[0].LastLine)
	assertDecimal(t, "66.6", elements[0].CoverageQuota)

	assert.Equal(t, "Run()", elements[1].Name)
	assert.Equal(t, 20, elements[1].FirstLine)
	assert.Equal(t, 21, elements[1].LastLine)
	assertDecimal(t, "100", elements[1].CoverageQuota)

	assert.Equal(t, "GetItems()", elements[2].Name)
	assert.Equal(t, 25, elements[2].FirstLine)
	assert.Equal(t, 25, elements[2].LastLine)
}

func TestParseDotSeparatedStateMachineFragment(t *testing.T) {
	result := parse(t, loadReport(t, "cobertura.xml"), nil, nil, nil)
	assert.NotContains(t, classNamesOf(result.Assembly("Test")), "Test.Program.<GetItems>d__3")

	file := classNamed(t, result.Assembly("Test"), "Test.Program").Files()[0]
	assert.Equal(t, 2, file.LineCoverage()[25])
	assert.Equal(t, coverage.Covered, file.LineVisitStatus()[25])

	getItems := file.MethodMetrics()[3]
	assert.Equal(t, "GetItems()", getItems.FullName)
	assert.Equal(t, "GetItems()", getItems.ShortName)
	assert.Equal(t, 25, getItems.Line)
}

func TestParsePartialClassWithMergedLines(t *testing.T) {
	result := parse(t, loadReport(t, "cobertura.xml"), nil, nil, nil)
	class := classNamed(t, result.Assembly("Test"), "Test.Partial")

	require.Len(t, class.Files(), 2)
	fileA, fileB := class.Files()[0], class.Files()[1]
	assert.Equal(t, "Partial.A.cs", fileA.Path)
	assert.Equal(t, "Partial.B.cs", fileB.Path)

	// the fragment with more covered branches wins
	assert.Equal(t, []coverage.Branch{{Identifier: "7_0", Visits: 1}, {Identifier: "7_1", Visits: 1}}, fileA.BranchesOfLine(7))
	assert.Equal(t, coverage.Covered, fileA.LineVisitStatus()[7])
	assert.Equal(t, coverage.Covered, fileA.LineVisitStatus()[9])
	assert.Len(t, fileA.LineCoverage(), 10)

	assert.Equal(t, coverage.NotCovered, fileB.LineVisitStatus()[3])
}

func TestParseClassWithoutLines(t *testing.T) {
	result := parse(t, loadReport(t, "cobertura.xml"), nil, nil, nil)
	class := classNamed(t, result.Assembly("Test"), "Test.Empty")

	require.Len(t, class.Files(), 1)
	assert.Empty(t, class.Files()[0].LineCoverage())
	assert.Empty(t, class.Files()[0].LineVisitStatus())
	assert.Empty(t, class.Files()[0].Branches())
}

func TestParseLargeHitCounts(t *testing.T) {
	result := parse(t, loadReport(t, "cobertura.xml"), nil, nil, nil)
	file := classNamed(t, result.Assembly("Other"), "Other.Util").Files()[0]

	assert.Equal(t, math.MaxInt32, file.LineCoverage()[1])
	assert.Equal(t, 1200, file.LineCoverage()[2])
}

func TestParseNegativeHitCountIsNotCovered(t *testing.T) {
	result := parse(t, loadReport(t, "cobertura.xml"), nil, nil, nil)
	file := classNamed(t, result.Assembly("Other"), "Other.Util").Files()[0]

	assert.Equal(t, 0, file.LineCoverage()[3])
	assert.Equal(t, coverage.NotCovered, file.LineVisitStatus()[3])
	assert.Equal(t, 3, file.CoverableLines())
	assert.Equal(t, 2, file.CoveredLines())
}

func TestParseWithFilters(t *testing.T) {
	doc := loadReport(t, "cobertura.xml")

	result := parse(t, doc, []string{"-Other"}, nil, nil)
	assert.Equal(t, []string{"Test"}, assemblyNamesOf(result))

	result = parse(t, doc, nil, []string{"-*.Program", "-*.Empty"}, nil)
	assert.Equal(t, []string{"Test.Merged", "Test.Partial"}, classNamesOf(result.Assembly("Test")))

	result = parse(t, doc, nil, nil, []string{"-Partial.B.cs"})
	class := classNamed(t, result.Assembly("Test"), "Test.Partial")
	require.Len(t, class.Files(), 1)
	assert.Equal(t, "Partial.A.cs", class.Files()[0].Path)
}

func TestParseDropsClassesWhoseFilesAreFiltered(t *testing.T) {
	result := parse(t, loadReport(t, "cobertura.xml"), nil, nil, []string{"+Program.cs"})

	assert.Equal(t, []string{"Test"}, assemblyNamesOf(result))
	assert.Equal(t, []string{"Test.Program"}, classNamesOf(result.Assembly("Test")))
}

func TestParseDropsAssembliesWithoutClasses(t *testing.T) {
	result := parse(t, loadReport(t, "cobertura.xml"), nil, []string{"-Other.*"}, nil)

	assert.Equal(t, []string{"Test"}, assemblyNamesOf(result))
	assert.Nil(t, result.Assembly("Other"))
}

func TestParseKeepsAssembliesWithoutClassesWhenNotFiltered(t *testing.T) {
	doc := &report.Coverage{Packages: []report.Package{{Name: stringPtr("Lonely")}}}

	result := parse(t, doc, nil, nil, nil)
	assert.Equal(t, []string{"Lonely"}, assemblyNamesOf(result))
	assert.Empty(t, result.Assembly("Lonely").Classes())

	result = parse(t, doc, nil, []string{"-Other.*"}, nil)
	assert.Empty(t, assemblyNamesOf(result))
}

func TestParseIsIdempotent(t *testing.T) {
	doc := loadReport(t, "cobertura.xml")

	sequential, err := NewCoberturaParser(nil, nil, nil, 1).Parse(doc)
	require.NoError(t, err)
	concurrent, err := NewCoberturaParser(nil, nil, nil, 8).Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, sequential, concurrent)
}

func TestParseNilReport(t *testing.T) {
	result, err := NewCoberturaParser(nil, nil, nil, 0).Parse(nil)

	assert.Nil(t, result)
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
}

func TestParseMalformedAttributes(t *testing.T) {
	var testCases = []struct {
		fixture  string
		expected MalformedAttributeError
	}{
		{"malformed_hits.xml", MalformedAttributeError{Element: "line", Attribute: "hits", Value: "many"}},
		{"missing_filename.xml", MalformedAttributeError{Element: "class", Attribute: "filename"}},
	}

	for _, testCase := range testCases {
		result, err := NewCoberturaParser(nil, nil, nil, 2).Parse(loadReport(t, testCase.fixture))
		assert.Nil(t, result, testCase.fixture)
		require.Error(t, err, testCase.fixture)

		var malformed *MalformedAttributeError
		require.True(t, errors.As(err, &malformed), testCase.fixture)
		assert.Equal(t, testCase.expected, *malformed, testCase.fixture)
	}
}

func TestParseMissingPackageName(t *testing.T) {
	doc := &report.Coverage{Packages: []report.Package{{}}}

	_, err := NewCoberturaParser(nil, nil, nil, 1).Parse(doc)
	assert.EqualError(t, err, "missing attribute 'name' of element 'package'")
}

func TestParseEmptyPackageName(t *testing.T) {
	doc := &report.Coverage{
		Packages: []report.Package{{
			Name: stringPtr(""),
			Classes: []report.Class{{
				Name:     stringPtr("Calculator"),
				Filename: stringPtr("Calculator.cs"),
				Lines:    []report.Line{{Number: "1", Hits: "1"}},
			}},
		}},
	}

	result, err := NewCoberturaParser(nil, nil, nil, 1).Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, assemblyNamesOf(result))
	assert.Equal(t, []string{"Calculator"}, classNamesOf(result.Assembly("")))
}

func TestParseEmptyPackageNameFromXML(t *testing.T) {
	doc, err := report.Decode([]byte(`<coverage><packages><package name=""><classes>` +
		`<class name="A" filename="A.cs"><lines><line number="1" hits="1"/></lines></class>` +
		`</classes></package></packages></coverage>`))
	require.NoError(t, err)

	result := parse(t, doc, nil, nil, nil)
	assert.Equal(t, []string{""}, assemblyNamesOf(result))
}

func TestParseTimestamp(t *testing.T) {
	var testCases = []struct {
		timestamp string
		sources   *report.Sources
		ok        bool
	}{
		{"1570000000", &report.Sources{}, true},
		{"1570000000", nil, false},
		{"", &report.Sources{}, false},
		{"2019-10-02", &report.Sources{}, false},
		{"1570000000000000", &report.Sources{}, false},
	}

	for _, testCase := range testCases {
		doc := &report.Coverage{Timestamp: testCase.timestamp, Sources: testCase.sources}
		result, err := NewCoberturaParser(nil, nil, nil, 1).Parse(doc)
		require.NoError(t, err)
		assert.Equal(t, testCase.ok, result.MinimumTimeStamp != nil, testCase.timestamp)
		assert.Equal(t, testCase.ok, result.MaximumTimeStamp != nil, testCase.timestamp)
	}
}

func TestParseSingleLineScenario(t *testing.T) {
	doc := &report.Coverage{
		Packages: []report.Package{{
			Name: stringPtr("Demo"),
			Classes: []report.Class{{
				Name:     stringPtr("Demo.Calculator"),
				Filename: stringPtr("Calculator.cs"),
				Lines:    []report.Line{{Number: "10", Hits: "5", Branch: "true", ConditionCoverage: "(1/2)"}},
			}},
		}},
	}

	result, err := NewCoberturaParser(nil, nil, nil, 1).Parse(doc)
	require.NoError(t, err)
	file := result.Assembly("Demo").Classes()[0].Files()[0]

	assert.Len(t, file.LineCoverage(), 11)
	assert.Equal(t, coverage.PartiallyCovered, file.LineVisitStatus()[10])
	assert.Equal(t, []coverage.Branch{{Identifier: "10_0", Visits: 1}, {Identifier: "10_1", Visits: 0}}, file.BranchesOfLine(10))
	assert.Equal(t, 1, file.CoveredBranches())
	assert.Equal(t, 2, file.TotalBranches())
}
