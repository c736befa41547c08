package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codewithboateng/pyreview/internal/issue"
)

type diffPayload struct {
	BaseID  string        `json:"base_id"`
	HeadID  string        `json:"head_id"`
	Summary diffSummary   `json:"summary"`
	New     []diffIssue   `json:"new"`
	Removed []diffIssue   `json:"removed"`
	Changed []diffChanged `json:"changed"`
}

type diffSummary struct {
	NewCount     int `json:"new"`
	RemovedCount int `json:"removed"`
	ChangedCount int `json:"changed"`
}

type diffIssue struct {
	File          string `json:"file"`
	Category      string `json:"category"`
	Priority      string `json:"priority,omitempty"`
	ImpactedLines string `json:"impacted_lines,omitempty"`
	Description   string `json:"description,omitempty"`
}

type diffChanged struct {
	Key     string    `json:"key"`
	Base    diffIssue `json:"base"`
	Head    diffIssue `json:"head"`
	Changed []string  `json:"fields_changed"`
}

// DiffRuns computes new, removed and changed issues between two stored runs.
// Identity is (file, category, description); priority and line moves count
// as changes, not as remove plus add.
func DiffRuns(baseID, headID string, base, head *issue.Run) diffPayload {
	bm := map[string]issue.FileIssue{}
	hm := map[string]issue.FileIssue{}
	for _, it := range base.Issues {
		bm[keyOf(it)] = it
	}
	for _, it := range head.Issues {
		hm[keyOf(it)] = it
	}

	var added []diffIssue
	var removed []diffIssue
	var changed []diffChanged

	// additions & changes
	for k, hi := range hm {
		bi, ok := bm[k]
		if !ok {
			added = append(added, asDiff(hi))
			continue
		}
		var fields []string
		if norm(bi.Priority) != norm(hi.Priority) {
			fields = append(fields, "priority")
		}
		if strings.TrimSpace(bi.ImpactedLines) != strings.TrimSpace(hi.ImpactedLines) {
			fields = append(fields, "impacted_lines")
		}
		if len(fields) > 0 {
			changed = append(changed, diffChanged{
				Key:     k,
				Base:    asDiff(bi),
				Head:    asDiff(hi),
				Changed: fields,
			})
		}
	}
	// removals
	for k, bi := range bm {
		if _, ok := hm[k]; !ok {
			removed = append(removed, asDiff(bi))
		}
	}

	// stable sort
	sort.Slice(added, func(i, j int) bool { return diffLess(added[i], added[j]) })
	sort.Slice(removed, func(i, j int) bool { return diffLess(removed[i], removed[j]) })
	sort.Slice(changed, func(i, j int) bool { return changed[i].Key < changed[j].Key })

	return diffPayload{
		BaseID: baseID, HeadID: headID,
		Summary: diffSummary{
			NewCount:     len(added),
			RemovedCount: len(removed),
			ChangedCount: len(changed),
		},
		New:     added,
		Removed: removed,
		Changed: changed,
	}
}

// WriteDiffJSON writes the run diff to outDir as diff_<base>__<head>.json.
func WriteDiffJSON(baseID, headID, outDir string, base, head *issue.Run) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, "diff_"+baseID+"__"+headID+".json")
	payload := DiffRuns(baseID, headID, base, head)
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, b, 0o644)
}

func keyOf(it issue.FileIssue) string {
	sb := strings.Builder{}
	sb.WriteString(norm(it.File))
	sb.WriteByte('|')
	sb.WriteString(norm(it.Category))
	sb.WriteByte('|')
	sb.WriteString(norm(it.Description))
	return sb.String()
}

func asDiff(it issue.FileIssue) diffIssue {
	return diffIssue{
		File:          it.File,
		Category:      it.Category,
		Priority:      it.Priority,
		ImpactedLines: it.ImpactedLines,
		Description:   it.Description,
	}
}

func diffLess(a, b diffIssue) bool {
	if a.Category != b.Category {
		return a.Category < b.Category
	}
	return a.Description < b.Description
}

func norm(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
