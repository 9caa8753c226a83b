package coverage

import (
	"github.com/shopspring/decimal"
)

// CodeElementType is the kind of a CodeElement.
type CodeElementType int

const (
	// Method is currently the only kind of code element.
	Method CodeElementType = iota
)

// CodeElement is a span of lines within a file, e.g. a method. Name is the condensed display name.
type CodeElement struct {
	Name          string
	FullName      string
	Type          CodeElementType
	FirstLine     int
	LastLine      int
	CoverageQuota decimal.NullDecimal
}
