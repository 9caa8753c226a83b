package report

import "encoding/xml"

// Coverage is the top level struct for the Cobertura report.
type Coverage struct {
	XMLName   xml.Name  `xml:"coverage"`
	Timestamp string    `xml:"timestamp,attr"`
	Sources   *Sources  `xml:"sources"`
	Packages  []Package `xml:"packages>package"`
}

// Sources lists the source root directories the file names of the report are relative to.
type Sources struct {
	Sources []string `xml:"source"`
}

// Package depicts an assembly (or a Java/Python package). Required attributes are pointers, nil
// means the attribute is absent.
type Package struct {
	Name    *string `xml:"name,attr"`
	Classes []Class `xml:"classes>class"`
}

// Class depicts one class fragment. Nested and partial classes as well as merged reports lead to
// several fragments per logical class.
type Class struct {
	Name     *string  `xml:"name,attr"`
	Filename *string  `xml:"filename,attr"`
	Methods  []Method `xml:"methods>method"`
	Lines    []Line   `xml:"lines>line"`
}

// Method depicts a method of a class fragment.
type Method struct {
	Name       *string `xml:"name,attr"`
	Signature  string  `xml:"signature,attr"`
	LineRate   string  `xml:"line-rate,attr"`
	BranchRate string  `xml:"branch-rate,attr"`
	Complexity string  `xml:"complexity,attr"`
	Lines      []Line  `xml:"lines>line"`
}

// Line depicts a line in a source file. Number and hits are kept as raw text, parsing happens in
// the parser which reports malformed values.
type Line struct {
	Number            string `xml:"number,attr"`
	Hits              string `xml:"hits,attr"`
	Branch            string `xml:"branch,attr"`
	ConditionCoverage string `xml:"condition-coverage,attr"`
}
