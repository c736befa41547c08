package issue

import "strings"

// Merge collapses identical issues reported on different lines into a single
// row per (file, category, normalized impact, normalized description).
// The merged row keeps the highest priority, the union of all impacted lines
// (range-compressed), and the unique impact/description texts in first-seen
// order. Output order is the first occurrence of each key.
func Merge(items []FileIssue) []FileIssue {
	type group struct {
		file     string
		category string
		priority string
		lines    []int
		impacts  []string
		descs    []string
	}

	norm := func(s string) string { return strings.Join(strings.Fields(s), " ") }

	grouped := make(map[[4]string]*group)
	var order [][4]string

	for _, it := range items {
		key := [4]string{it.File, it.Category, norm(it.PotentialImpact), norm(it.Description)}
		g, ok := grouped[key]
		if !ok {
			grouped[key] = &group{
				file:     it.File,
				category: it.Category,
				priority: it.Priority,
				lines:    ParseLines(it.ImpactedLines),
				impacts:  []string{it.PotentialImpact},
				descs:    []string{it.Description},
			}
			order = append(order, key)
			continue
		}
		g.priority = MaxPriority(g.priority, it.Priority)
		g.lines = append(g.lines, ParseLines(it.ImpactedLines)...)
		if !contains(g.impacts, it.PotentialImpact) {
			g.impacts = append(g.impacts, it.PotentialImpact)
		}
		if !contains(g.descs, it.Description) {
			g.descs = append(g.descs, it.Description)
		}
	}

	merged := make([]FileIssue, 0, len(order))
	for _, key := range order {
		g := grouped[key]
		merged = append(merged, FileIssue{
			File: g.file,
			Issue: Issue{
				Category:        g.category,
				Priority:        g.priority,
				ImpactedLines:   CompressLines(g.lines),
				PotentialImpact: strings.Join(g.impacts, " | "),
				Description:     strings.Join(g.descs, " | "),
			},
		})
	}
	return merged
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
