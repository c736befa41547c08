// Package reporting renders analysis results as CSV, JSON, text, HTML and diffs.
package reporting

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/codewithboateng/pyreview/internal/issue"
)

var csvHeader = []string{
	"category of issue",
	"priority of issue",
	"impacted lines",
	"potential impact",
	"description",
}

// WriteCSV writes issues as a semicolon-delimited CSV file.
func WriteCSV(path string, issues []issue.FileIssue) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, it := range issues {
		rec := []string{
			it.Category,
			it.Priority,
			it.ImpactedLines,
			it.PotentialImpact,
			prefixDesc(it),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// prefixDesc prepends the file's base name so merged multi-file reports
// stay attributable per row.
func prefixDesc(it issue.FileIssue) string {
	return filepath.Base(it.File) + ": " + it.Description
}
