package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewithboateng/pyreview/internal/issue"
)

func mk(category, priority string) issue.FileIssue {
	return issue.FileIssue{File: "a.py", Issue: issue.Issue{Category: category, Priority: priority}}
}

func TestBuild_Counts(t *testing.T) {
	s := Build([]issue.FileIssue{
		mk("Security", issue.High),
		mk("Style", issue.Low),
		mk("Style", issue.Low),
		mk("Correctness", issue.Medium),
	})
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.High)
	assert.Equal(t, 1, s.Medium)
	assert.Equal(t, 2, s.Low)
	// HIGH=5 + MEDIUM=2 + 2*LOW=1 -> 9 penalty
	assert.Equal(t, 91, s.Score)
}

func TestBuild_CategoryOrdering(t *testing.T) {
	s := Build([]issue.FileIssue{
		mk("Style", issue.Low),
		mk("Style", issue.Low),
		mk("Bravo", issue.Low),
		mk("Alpha", issue.Low),
	})
	require.Len(t, s.Categories, 3)
	assert.Equal(t, CategoryCount{Category: "Style", Count: 2}, s.Categories[0])
	// ties break alphabetically
	assert.Equal(t, "Alpha", s.Categories[1].Category)
	assert.Equal(t, "Bravo", s.Categories[2].Category)
}

func TestBuild_ScoreFloorsAtZero(t *testing.T) {
	var many []issue.FileIssue
	for i := 0; i < 30; i++ {
		many = append(many, mk("Security", issue.High))
	}
	s := Build(many)
	assert.Equal(t, 0, s.Score)
}

func TestBuild_Empty(t *testing.T) {
	s := Build(nil)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 100, s.Score)
	assert.Empty(t, s.Categories)
}
