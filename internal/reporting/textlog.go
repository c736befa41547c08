package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/summary"
)

const exampleLimit = 10

// WriteTextLog writes a short human-friendly summary of a run.
func WriteTextLog(path, source string, issues []issue.FileIssue) error {
	s := summary.Build(issues)

	var b strings.Builder
	fmt.Fprintf(&b, "pyreview summary for %s\n", filepath.Base(source))
	b.WriteString(strings.Repeat("=", 72) + "\n")
	fmt.Fprintf(&b, "Total issues: %d\n", s.Total)
	fmt.Fprintf(&b, "By priority: HIGH=%d, MEDIUM=%d, LOW=%d\n", s.High, s.Medium, s.Low)
	b.WriteString("By category:\n")
	for _, c := range s.Categories {
		fmt.Fprintf(&b, "  - %s: %d\n", c.Category, c.Count)
	}
	if len(issues) > 0 {
		b.WriteString("\nExamples:\n")
		for i, it := range issues {
			if i >= exampleLimit {
				break
			}
			fmt.Fprintf(&b, "  • [%s] %s @ %s :: %s\n",
				it.Priority, it.Category, it.ImpactedLines, it.Description)
		}
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
