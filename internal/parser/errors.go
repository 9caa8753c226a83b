package parser

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned if no report is passed to the parser.
var ErrInvalidArgument = errors.New("invalid argument")

// MalformedAttributeError is returned if a required attribute of the report is missing or can not be parsed.
type MalformedAttributeError struct {
	Element   string
	Attribute string
	Value     string
}

func (e *MalformedAttributeError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("missing attribute '%s' of element '%s'", e.Attribute, e.Element)
	}
	return fmt.Sprintf("malformed attribute '%s' of element '%s': '%s'", e.Attribute, e.Element, e.Value)
}

func missingAttribute(element, attribute string) error {
	return &MalformedAttributeError{Element: element, Attribute: attribute}
}

func malformedAttribute(element, attribute, value string) error {
	return &MalformedAttributeError{Element: element, Attribute: attribute, Value: value}
}
