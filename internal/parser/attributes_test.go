package parser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHits(t *testing.T) {
	var testCases = []struct {
		value    string
		expected int
		err      string
	}{
		{"0", 0, ""},
		{"42", 42, ""},
		{"2147483648", math.MaxInt32, ""},
		{"99999999999999999999999", math.MaxInt32, ""},
		{"1.5E2", 150, ""},
		{"-1", 0, ""},
		{"-99999999999", 0, ""},
		{"-1.5E2", 0, ""},
		{"", 0, "missing attribute 'hits' of element 'line'"},
		{"lots", 0, "malformed attribute 'hits' of element 'line': 'lots'"},
	}

	for _, testCase := range testCases {
		hits, err := parseHits(testCase.value)
		if testCase.err != "" {
			assert.EqualError(t, err, testCase.err, testCase.value)
			continue
		}
		assert.NoError(t, err, testCase.value)
		assert.Equal(t, testCase.expected, hits, testCase.value)
	}
}

func TestParseLineNumber(t *testing.T) {
	number, err := parseLineNumber("line", "17")
	assert.NoError(t, err)
	assert.Equal(t, 17, number)

	_, err = parseLineNumber("line", "")
	assert.EqualError(t, err, "missing attribute 'number' of element 'line'")

	_, err = parseLineNumber("line", "-3")
	assert.EqualError(t, err, "malformed attribute 'number' of element 'line': '-3'")
}

func TestRequireAttribute(t *testing.T) {
	_, err := requireAttribute("package", "name", nil)
	assert.EqualError(t, err, "missing attribute 'name' of element 'package'")

	empty := ""
	value, err := requireAttribute("package", "name", &empty)
	assert.NoError(t, err)
	assert.Equal(t, "", value)
}
