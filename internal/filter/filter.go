package filter

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Filter decides whether an element (assembly, class or file) is part of the report.
type Filter interface {
	// IsIncluded returns true if the element with the given name is part of the report.
	IsIncluded(name string) bool
	// HasCustomFilters returns true if at least one filter pattern has been configured.
	HasCustomFilters() bool
}

// DefaultFilter matches names against include and exclude glob patterns.
//
// A pattern prefixed with '+' (or without prefix) includes, a pattern prefixed with '-' excludes.
// If no include pattern is given every name not excluded is included. Patterns use doublestar
// syntax and are matched case-insensitively, back slashes are treated as forward slashes.
type DefaultFilter struct {
	includes []string
	excludes []string
}

// NewDefaultFilter creates a filter from the given patterns. Empty patterns are ignored.
func NewDefaultFilter(patterns []string) (*DefaultFilter, error) {
	f := &DefaultFilter{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		exclude := false
		switch p[0] {
		case '-':
			exclude = true
			p = p[1:]
		case '+':
			p = p[1:]
		}
		p = normalize(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Errorf("invalid filter pattern '%s'", p)
		}

		if exclude {
			f.excludes = append(f.excludes, p)
		} else {
			f.includes = append(f.includes, p)
		}
	}
	return f, nil
}

// AcceptAll returns a filter without any patterns.
func AcceptAll() *DefaultFilter {
	return &DefaultFilter{}
}

// ParsePatterns splits a ';' or ',' separated list of patterns.
func ParsePatterns(s string) []string {
	patterns := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ','
	})
	patterns = lo.Map(patterns, func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Compact(patterns)
}

// IsIncluded returns true if name matches an include pattern (or there is none) and no exclude pattern.
func (f *DefaultFilter) IsIncluded(name string) bool {
	name = normalize(name)
	if len(f.includes) > 0 && !matchesAny(f.includes, name) {
		return false
	}
	return !matchesAny(f.excludes, name)
}

// HasCustomFilters returns true if at least one pattern has been configured.
func (f *DefaultFilter) HasCustomFilters() bool {
	return len(f.includes) > 0 || len(f.excludes) > 0
}

func matchesAny(patterns []string, name string) bool {
	return lo.ContainsBy(patterns, func(p string) bool {
		// patterns have been validated on construction
		match, _ := doublestar.Match(p, name)
		return match
	})
}

func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "\\", "/"))
}
