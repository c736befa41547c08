package analyzer

import (
	"fmt"
	"os"
	"strings"

	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/parser"
	"github.com/codewithboateng/pyreview/internal/rules"
)

// RunOnFile analyzes one Python file. Unreadable files yield no issues;
// analysis failures never surface as errors from the driver.
func RunOnFile(path string, s rules.Settings, maxLines int) []issue.Issue {
	return RunOnFileWith(path, s, maxLines, nil)
}

// RunOnFileWith is RunOnFile with extra rules appended to the registry.
func RunOnFileWith(path string, s rules.Settings, maxLines int, extra []rules.Rule) []issue.Issue {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return RunOnSourceWith(path, src, s, maxLines, extra)
}

// RunOnSource parses src once, runs the full registry against the shared
// tree and text, filters by minimum priority, and caps very long
// impacted-line lists when maxLines is positive.
func RunOnSource(path string, src []byte, s rules.Settings, maxLines int) []issue.Issue {
	return RunOnSourceWith(path, src, s, maxLines, nil)
}

// RunOnSourceWith is RunOnSource with extra rules appended to the registry.
func RunOnSourceWith(path string, src []byte, s rules.Settings, maxLines int, extra []rules.Rule) []issue.Issue {
	s = s.Normalize()
	tree := parser.Parse(src)
	ctx := rules.NewContext(path, string(src), tree, s)
	rs := append(rules.DefaultRegistry(s), extra...)
	found := rules.Evaluate(rs, ctx)
	if maxLines <= 0 {
		return found
	}
	out := make([]issue.Issue, 0, len(found))
	for _, iss := range found {
		iss.ImpactedLines = truncateLines(iss.ImpactedLines, maxLines)
		out = append(out, iss)
	}
	return out
}

// truncateLines caps a comma-separated line list at max entries, noting
// how many were dropped. Single lines and ranges pass through untouched.
func truncateLines(spec string, max int) string {
	if !strings.Contains(spec, ",") {
		return spec
	}
	parts := strings.Split(spec, ",")
	if len(parts) <= max {
		return spec
	}
	kept := strings.Join(parts[:max], ",")
	return fmt.Sprintf("%s,+%d more", kept, len(parts)-max)
}

// Pair attaches the analyzed file path to each issue.
func Pair(path string, issues []issue.Issue) []issue.FileIssue {
	out := make([]issue.FileIssue, 0, len(issues))
	for _, iss := range issues {
		out = append(out, issue.FileIssue{File: path, Issue: iss})
	}
	return out
}
