package rules

import (
	"strings"
	"testing"

	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/parser"
)

// runRule parses src and executes a single rule against it.
func runRule(t *testing.T, r Rule, src string) []issue.Issue {
	t.Helper()
	ctx := NewContext("sample.py", src, parser.Parse([]byte(src)), DefaultSettings())
	return r.Run(ctx)
}

func anyDescContains(issues []issue.Issue, sub string) bool {
	for _, it := range issues {
		if strings.Contains(it.Description, sub) {
			return true
		}
	}
	return false
}

func linesOf(issues []issue.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, it := range issues {
		out = append(out, it.ImpactedLines)
	}
	return out
}
