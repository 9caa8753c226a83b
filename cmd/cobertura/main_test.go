package main

import (
	"path/filepath"
	"testing"

	"github.com/jenkins-x-apps/jx-app-cobertura/internal/parser"
	"github.com/stretchr/testify/assert"
)

func TestParseReports(t *testing.T) {
	p := parser.NewCoberturaParser(nil, nil, nil, 2)

	err := parseReports(p, []string{filepath.Join("testdata", "cobertura.xml")})
	assert.NoError(t, err)

	err = parseReports(p, []string{filepath.Join("testdata", "cobertura.xml"), filepath.Join("testdata", "missing.xml")})
	assert.EqualError(t, err, "1 of 2 reports could not be processed")
}

func TestRootCommandRequiresReport(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}
