package reporting

import (
	"fmt"
	"html"
	"os"
	"path/filepath"

	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/summary"
)

// WriteHTML writes a single-page HTML report for one run.
func WriteHTML(path, source string, issues []issue.FileIssue) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := summary.Build(issues)
	base := filepath.Base(source)

	// Head + styles
	fmt.Fprintf(f, "<!doctype html><html><head><meta charset='utf-8'><title>%s</title>", html.EscapeString(base))
	fmt.Fprint(f, "<style>body{font-family:system-ui,Arial,sans-serif;padding:20px;line-height:1.4} table{border-collapse:collapse;margin:8px 0} td,th{border:1px solid #ddd;padding:6px} h1,h2{margin:6px 0 4px} .dim{color:#666} .mono{font-family:ui-monospace,Menlo,Consolas,monospace} .HIGH{color:#b00} .MEDIUM{color:#b60} .LOW{color:#060}</style>")
	fmt.Fprint(f, "</head><body>")

	// Title + summary
	fmt.Fprintf(f, "<h1>pyreview report &ndash; <span class='mono'>%s</span></h1>", html.EscapeString(base))
	fmt.Fprintf(f, "<p>Issues: %d &nbsp; Score: %d/100</p>", s.Total, s.Score)
	fmt.Fprintf(f, "<p><b>By priority</b>: HIGH=%d &nbsp; MEDIUM=%d &nbsp; LOW=%d</p>", s.High, s.Medium, s.Low)

	// Category breakdown
	if len(s.Categories) > 0 {
		fmt.Fprint(f, "<h2>By Category</h2><table><tr><th>Category</th><th>Count</th></tr>")
		for _, c := range s.Categories {
			fmt.Fprintf(f, "<tr><td>%s</td><td>%d</td></tr>", html.EscapeString(c.Category), c.Count)
		}
		fmt.Fprint(f, "</table>")
	}

	// All issues
	if len(issues) > 0 {
		fmt.Fprint(f, "<h2>All Issues</h2><table><tr><th>Priority</th><th>Category</th><th>Lines</th><th>Potential Impact</th><th>Description</th></tr>")
		for _, it := range issues {
			fmt.Fprintf(f, "<tr><td class='%s'>%s</td><td>%s</td><td class='mono'>%s</td><td>%s</td><td>%s</td></tr>",
				html.EscapeString(it.Priority),
				html.EscapeString(it.Priority),
				html.EscapeString(it.Category),
				html.EscapeString(it.ImpactedLines),
				html.EscapeString(it.PotentialImpact),
				html.EscapeString(prefixDesc(it)),
			)
		}
		fmt.Fprint(f, "</table>")
	} else {
		fmt.Fprint(f, "<h2>All Issues</h2><p class='dim'>No issues at or above the configured threshold.</p>")
	}

	fmt.Fprint(f, "</body></html>")
	return nil
}
