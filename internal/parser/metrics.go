package parser

import (
	"strings"

	"github.com/jenkins-x-apps/jx-app-cobertura/internal/coverage"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/report"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// methodMetrics builds the metrics of a method. Cyclomatic complexity is always the first metric.
func methodMetrics(method report.Method) ([]coverage.Metric, error) {
	metrics := []coverage.Metric{}

	if method.LineRate != "" {
		value, err := parseMetricValue("line-rate", method.LineRate, true)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, coverage.LineCoverageMetric(value))
	}

	if method.BranchRate != "" {
		value, err := parseMetricValue("branch-rate", method.BranchRate, true)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, coverage.BranchCoverageMetric(value))
	}

	if method.Complexity != "" {
		value, err := parseMetricValue("complexity", method.Complexity, false)
		if err != nil {
			return nil, err
		}
		metrics = append([]coverage.Metric{coverage.CyclomaticComplexityMetric(value)}, metrics...)
	}

	return metrics, nil
}

// parseMetricValue parses a decimal with either '.' or ',' as separator, rounded half away from zero
// to two decimal places. Rates are scaled to percentages. 'NaN' yields an invalid value.
func parseMetricValue(attribute, value string, rate bool) (decimal.NullDecimal, error) {
	if strings.EqualFold(value, "NaN") {
		return decimal.NullDecimal{}, nil
	}

	d, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(value), ",", ".", -1))
	if err != nil {
		return decimal.NullDecimal{}, malformedAttribute("method", attribute, value)
	}
	if rate {
		d = d.Mul(hundred)
	}
	return decimal.NullDecimal{Decimal: d.Round(2), Valid: true}, nil
}
