package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jenkins-x-apps/jx-app-cobertura/internal/coverage"
	"github.com/jenkins-x-apps/jx-app-cobertura/internal/report"
)

var conditionCoverageRegex = regexp.MustCompile(`\((?P<covered>\d+)/(?P<total>\d+)\)$`)

// extractBranches creates the branches of the given lines by line number.
//
// Cobertura only reports how many branches of a line are covered, so the first 'covered' branches
// are marked as visited. If a line occurs several times (merged reports) the branches with more
// visited branches win.
func extractBranches(lines []report.Line) (map[int][]coverage.Branch, error) {
	result := map[int][]coverage.Branch{}
	for _, line := range lines {
		if line.ConditionCoverage == "" || !strings.EqualFold(line.Branch, "true") {
			continue
		}
		covered, total, ok := parseConditionCoverage(line.ConditionCoverage)
		if !ok {
			continue
		}
		number, err := parseLineNumber("line", line.Number)
		if err != nil {
			return nil, err
		}

		branches := synthesizeBranches(number, covered, total)
		if existing, found := result[number]; found {
			branches = mergeBranches(existing, branches)
		}
		result[number] = branches
	}
	return result, nil
}

// parseConditionCoverage parses strings like '50% (1/2)'.
func parseConditionCoverage(conditionCoverage string) (covered int, total int, ok bool) {
	match := conditionCoverageRegex.FindStringSubmatch(conditionCoverage)
	if match == nil {
		return 0, 0, false
	}
	covered, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, false
	}
	total, err = strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, false
	}
	return covered, total, true
}

func synthesizeBranches(line, covered, total int) []coverage.Branch {
	branches := make([]coverage.Branch, 0, total)
	for i := 0; i < total; i++ {
		visits := 0
		if i < covered {
			visits = 1
		}
		branches = append(branches, coverage.Branch{
			Identifier: fmt.Sprintf("%d_%d", line, i),
			Visits:     visits,
		})
	}
	return branches
}

// mergeBranches returns candidate if it has strictly more visited branches than existing, existing otherwise.
func mergeBranches(existing, candidate []coverage.Branch) []coverage.Branch {
	if coverage.CountVisited(candidate) > coverage.CountVisited(existing) {
		return candidate
	}
	return existing
}
