package issue

import (
	"path/filepath"
	"sort"
)

// Sort orders findings for reporting: priority descending, then category,
// then file base name, then first impacted line. The sort is stable so equal
// keys keep their rule/traversal order.
func Sort(items []FileIssue) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if ra, rb := Rank(a.Priority), Rank(b.Priority); ra != rb {
			return ra > rb
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		fa, fb := filepath.Base(a.File), filepath.Base(b.File)
		if fa != fb {
			return fa < fb
		}
		return FirstLine(a.ImpactedLines) < FirstLine(b.ImpactedLines)
	})
}
