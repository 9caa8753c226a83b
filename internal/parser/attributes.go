package parser

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

var (
	maxHits = decimal.NewFromInt(math.MaxInt32)
)

// requireAttribute fails only for an absent attribute, an empty value is valid.
func requireAttribute(element, attribute string, value *string) (string, error) {
	if value == nil {
		return "", missingAttribute(element, attribute)
	}
	return *value, nil
}

func attributeValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func parseLineNumber(element, value string) (int, error) {
	if value == "" {
		return 0, missingAttribute(element, "number")
	}
	number, err := strconv.Atoi(value)
	if err != nil || number < 0 {
		return 0, malformedAttribute(element, "number", value)
	}
	return number, nil
}

// parseHits parses a hit count. Some tools write hit counts in scientific notation or beyond the
// int32 range, such values are clamped. Negative counts become 0.
func parseHits(value string) (int, error) {
	if value == "" {
		return 0, missingAttribute("line", "hits")
	}
	if hits, err := strconv.ParseInt(value, 10, 32); err == nil {
		return max(int(hits), 0), nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, malformedAttribute("line", "hits", value)
	}
	switch {
	case d.GreaterThan(maxHits):
		return math.MaxInt32, nil
	case d.IsNegative():
		return 0, nil
	default:
		return int(d.IntPart()), nil
	}
}
