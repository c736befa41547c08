// Package summary aggregates per-run issue counts and a quality score.
package summary

import (
	"sort"

	"github.com/codewithboateng/pyreview/internal/issue"
)

// Penalty weights per priority.
const (
	weightHigh   = 5
	weightMedium = 2
	weightLow    = 1
)

// CategoryCount is one per-category tally, used for sorted output.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Summary is the aggregate view of one analysis run.
type Summary struct {
	Total      int             `json:"total"`
	High       int             `json:"high"`
	Medium     int             `json:"medium"`
	Low        int             `json:"low"`
	Categories []CategoryCount `json:"categories"` // by count desc, then name
	Score      int             `json:"score"`      // 0..100, 100 = clean
}

// Build tallies issues by priority and category and computes the score.
func Build(issues []issue.FileIssue) Summary {
	s := Summary{Total: len(issues)}
	byCat := map[string]int{}
	penalty := 0
	for _, it := range issues {
		switch it.Priority {
		case issue.High:
			s.High++
			penalty += weightHigh
		case issue.Medium:
			s.Medium++
			penalty += weightMedium
		default:
			s.Low++
			penalty += weightLow
		}
		byCat[it.Category]++
	}
	for cat, n := range byCat {
		s.Categories = append(s.Categories, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(s.Categories, func(i, j int) bool {
		a, b := s.Categories[i], s.Categories[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})
	s.Score = 100 - penalty
	if s.Score < 0 {
		s.Score = 0
	}
	return s
}
