package rules

import (
	"strings"

	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/storage"
)

// ApplySuppressions filters out issues matched by any active suppression.
// Returns (kept, suppressedCount).
func ApplySuppressions(in []issue.FileIssue, sups []storage.Suppression) ([]issue.FileIssue, int) {
	if len(sups) == 0 || len(in) == 0 {
		return in, 0
	}
	var out []issue.FileIssue
	suppressed := 0
nextIssue:
	for _, fi := range in {
		for _, s := range sups {
			if !strings.EqualFold(strings.TrimSpace(fi.Category), strings.TrimSpace(s.Category)) {
				continue
			}
			if s.File != "" && !strings.EqualFold(fi.File, s.File) {
				continue
			}
			if s.PatternSub != "" {
				sub := strings.ToUpper(s.PatternSub)
				if !strings.Contains(strings.ToUpper(fi.Description), sub) &&
					!strings.Contains(strings.ToUpper(fi.PotentialImpact), sub) {
					continue
				}
			}
			suppressed++
			continue nextIssue
		}
		out = append(out, fi)
	}
	return out, suppressed
}
