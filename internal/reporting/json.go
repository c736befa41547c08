package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/codewithboateng/pyreview/internal/issue"
)

type jsonIssue struct {
	File            string `json:"file"`
	Category        string `json:"category"`
	Priority        string `json:"priority"`
	ImpactedLines   string `json:"impacted_lines"`
	PotentialImpact string `json:"potential_impact"`
	Description     string `json:"description"`
}

// WriteJSON writes issues as an indented JSON array.
func WriteJSON(path string, issues []issue.FileIssue) error {
	out := make([]jsonIssue, 0, len(issues))
	for _, it := range issues {
		out = append(out, jsonIssue{
			File:            it.File,
			Category:        it.Category,
			Priority:        it.Priority,
			ImpactedLines:   it.ImpactedLines,
			PotentialImpact: it.PotentialImpact,
			Description:     prefixDesc(it),
		})
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteRunJSON writes a full stored run to outDir as <runID>.json.
func WriteRunJSON(runID, outDir string, run *issue.Run) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, runID+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return "", err
	}
	return path, nil
}
