package coverage

import (
	"github.com/shopspring/decimal"
)

// MetricType categorizes a Metric.
type MetricType int

const (
	// CoveragePercentual metrics are percentages, e.g. line coverage.
	CoveragePercentual MetricType = iota
	// CodeQuality metrics are absolute values, e.g. cyclomatic complexity.
	CodeQuality
)

func (t MetricType) String() string {
	switch t {
	case CoveragePercentual:
		return "CoveragePercentual"
	case CodeQuality:
		return "CodeQuality"
	default:
		return "Unknown"
	}
}

// MetricMergeOrder tells renderers which of two values of the same metric is the better one.
type MetricMergeOrder int

const (
	// HigherIsBetter is the default merge order.
	HigherIsBetter MetricMergeOrder = iota
	// LowerIsBetter is used for metrics like complexity.
	LowerIsBetter
)

// Metric is a named value of a method. An invalid Value means the report contained 'NaN'.
type Metric struct {
	Name           string
	ExplanationURL string
	Type           MetricType
	Value          decimal.NullDecimal
	MergeOrder     MetricMergeOrder
}

const (
	coverageExplanationURL   = "https://en.wikipedia.org/wiki/Code_coverage"
	complexityExplanationURL = "https://en.wikipedia.org/wiki/Cyclomatic_complexity"
)

// LineCoverageMetric creates the line coverage metric.
func LineCoverageMetric(value decimal.NullDecimal) Metric {
	return Metric{
		Name:           "Line coverage",
		ExplanationURL: coverageExplanationURL,
		Type:           CoveragePercentual,
		Value:          value,
		MergeOrder:     HigherIsBetter,
	}
}

// BranchCoverageMetric creates the branch coverage metric.
func BranchCoverageMetric(value decimal.NullDecimal) Metric {
	return Metric{
		Name:           "Branch coverage",
		ExplanationURL: coverageExplanationURL,
		Type:           CoveragePercentual,
		Value:          value,
		MergeOrder:     HigherIsBetter,
	}
}

// CyclomaticComplexityMetric creates the cyclomatic complexity metric.
func CyclomaticComplexityMetric(value decimal.NullDecimal) Metric {
	return Metric{
		Name:           "Cyclomatic complexity",
		ExplanationURL: complexityExplanationURL,
		Type:           CodeQuality,
		Value:          value,
		MergeOrder:     LowerIsBetter,
	}
}

// MethodMetric holds the metrics of one method. Line is the first source line of the method, 0 if unknown.
type MethodMetric struct {
	FullName  string
	ShortName string
	Metrics   []Metric
	Line      int
}

// HasLine returns true if the source line of the method is known.
func (m MethodMetric) HasLine() bool {
	return m.Line > 0
}
