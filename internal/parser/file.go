package parser

import (
	"strings"

	"github.com/jenkins-x-apps/jx-app-cobertura/internal/coverage"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/report"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type parsedLine struct {
	number int
	hits   int
}

// processFile builds the coverage of one file of a class. A file may be fed by several fragments of
// the class, their lines and methods are combined.
func processFile(packages []report.Package, class *coverage.Class, path string) (*coverage.CodeFile, error) {
	logger.Tracef("processing file '%s' of class '%s'", path, class.Name)

	fragments := classFragments(packages, func(fragmentName string) bool {
		return isFragmentOf(fragmentName, class.Name) || strings.HasPrefix(fragmentName, class.Name+".")
	})
	fragments = lo.Filter(fragments, func(fragment report.Class, _ int) bool {
		return attributeValue(fragment.Filename) == path
	})

	lines := []report.Line{}
	for _, fragment := range fragments {
		lines = append(lines, fragment.Lines...)
	}

	parsedLines := make([]parsedLine, 0, len(lines))
	for _, line := range lines {
		number, err := parseLineNumber("line", line.Number)
		if err != nil {
			return nil, err
		}
		hits, err := parseHits(line.Hits)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", number)
		}
		parsedLines = append(parsedLines, parsedLine{number: number, hits: hits})
	}

	branches, err := extractBranches(lines)
	if err != nil {
		return nil, err
	}

	lineCoverage, lineVisitStatus := lineArrays(parsedLines, branches)
	codeFile := coverage.NewCodeFile(path, lineCoverage, lineVisitStatus, branches)

	for _, fragment := range fragments {
		for _, method := range fragment.Methods {
			if err := addMethod(attributeValue(fragment.Name), method, codeFile); err != nil {
				return nil, err
			}
		}
	}
	return codeFile, nil
}

// lineArrays creates the hit count and visit status per line number. Lines without data keep
// coverage.NoCoverage and coverage.NotCoverable.
func lineArrays(lines []parsedLine, branches map[int][]coverage.Branch) ([]int, []coverage.LineVisitStatus) {
	if len(lines) == 0 {
		return []int{}, []coverage.LineVisitStatus{}
	}

	maxLine := lo.MaxBy(lines, func(a, b parsedLine) bool {
		return a.number > b.number
	}).number

	lineCoverage := make([]int, maxLine+1)
	for i := range lineCoverage {
		lineCoverage[i] = coverage.NoCoverage
	}
	lineVisitStatus := make([]coverage.LineVisitStatus, maxLine+1)

	for _, line := range lines {
		lineCoverage[line.number] = line.hits
		lineVisitStatus[line.number] = lineStatus(line.hits, branches[line.number])
	}
	return lineCoverage, lineVisitStatus
}

func lineStatus(hits int, branches []coverage.Branch) coverage.LineVisitStatus {
	if hits <= 0 {
		return coverage.NotCovered
	}
	partiallyCovered := lo.ContainsBy(branches, func(b coverage.Branch) bool {
		return b.Visits == 0
	})
	if partiallyCovered {
		return coverage.PartiallyCovered
	}
	return coverage.Covered
}

// addMethod adds the metrics and the code element of a method. Compiler generated lambdas are skipped.
func addMethod(className string, method report.Method, codeFile *coverage.CodeFile) error {
	name, err := requireAttribute("method", "name", method.Name)
	if err != nil {
		return err
	}
	fullName := resolveMethodName(className, name+method.Signature)
	if isLambda(fullName) {
		return nil
	}
	shortName := shortMethodName(fullName)

	metrics, err := methodMetrics(method)
	if err != nil {
		return errors.Wrapf(err, "method '%s'", fullName)
	}

	lineNumbers := make([]int, 0, len(method.Lines))
	for _, line := range method.Lines {
		number, err := parseLineNumber("line", line.Number)
		if err != nil {
			return errors.Wrapf(err, "method '%s'", fullName)
		}
		lineNumbers = append(lineNumbers, number)
	}

	methodMetric := coverage.MethodMetric{
		FullName:  fullName,
		ShortName: shortName,
		Metrics:   metrics,
	}
	if len(lineNumbers) > 0 {
		methodMetric.Line = lineNumbers[0]
	}
	codeFile.AddMethodMetric(methodMetric)

	if len(lineNumbers) > 0 {
		firstLine, lastLine := lineNumbers[0], lineNumbers[len(lineNumbers)-1]
		codeFile.AddCodeElement(coverage.CodeElement{
			Name:          shortName,
			FullName:      fullName,
			Type:          coverage.Method,
			FirstLine:     firstLine,
			LastLine:      lastLine,
			CoverageQuota: codeFile.CoverageQuota(firstLine, lastLine),
		})
	}
	return nil
}
