package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/storage"
)

func TestDefaultRegistry_FullSet(t *testing.T) {
	rs := DefaultRegistry(DefaultSettings())
	assert.Len(t, rs, 38)

	seen := map[string]bool{}
	for _, r := range rs {
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Category)
		assert.False(t, seen[r.Name], "duplicate rule %s", r.Name)
		seen[r.Name] = true
		assert.True(t, r.Check != nil || len(r.Hooks) > 0, "rule %s has no body", r.Name)
	}
}

func TestDefaultRegistry_DisabledFilter(t *testing.T) {
	s := DefaultSettings()
	s.Disabled["PrintStatements"] = true
	rs := DefaultRegistry(s)
	assert.Len(t, rs, 37)
	for _, r := range rs {
		assert.NotEqual(t, "PrintStatements", r.Name)
	}
}

func TestEvaluate_MinPriorityFilter(t *testing.T) {
	src := `print("debug")
eval(code)
`
	low := Analyze("sample.py", []byte(src), DefaultSettings())
	assert.True(t, len(low) >= 2)

	s := DefaultSettings()
	s.MinPriority = issue.High
	high := Analyze("sample.py", []byte(src), s)
	require.NotEmpty(t, high)
	for _, it := range high {
		assert.Equal(t, issue.High, it.Priority)
	}
}

func TestRun_NilTreeProducesNothingForEveryRule(t *testing.T) {
	// Unparseable source suppresses every rule, even the text scanners.
	src := "def broken(:\n    pass  # TODO fixme\n"
	got := Analyze("sample.py", []byte(src), DefaultSettings())
	assert.Empty(t, got)
}

func TestEvaluate_DeterministicAcrossRuns(t *testing.T) {
	src := `import zlib
import os

f = open("a.txt", "r")
f.write("x")
unused_one = 1
unused_two = 2
`
	first := Analyze("sample.py", []byte(src), DefaultSettings())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Analyze("sample.py", []byte(src), DefaultSettings()))
	}
}

func TestApplySuppressions(t *testing.T) {
	in := []issue.FileIssue{
		{File: "a.py", Issue: issue.Issue{Category: "Security", Description: "Use of eval()."}},
		{File: "a.py", Issue: issue.Issue{Category: "Style", Description: "print() used"}},
		{File: "b.py", Issue: issue.Issue{Category: "Security", Description: "Use of exec()."}},
	}

	t.Run("category wide", func(t *testing.T) {
		kept, n := ApplySuppressions(in, []storage.Suppression{{Category: "security"}})
		assert.Equal(t, 2, n)
		require.Len(t, kept, 1)
		assert.Equal(t, "Style", kept[0].Category)
	})

	t.Run("file scoped", func(t *testing.T) {
		kept, n := ApplySuppressions(in, []storage.Suppression{{Category: "Security", File: "b.py"}})
		assert.Equal(t, 1, n)
		assert.Len(t, kept, 2)
	})

	t.Run("pattern scoped", func(t *testing.T) {
		kept, n := ApplySuppressions(in, []storage.Suppression{{Category: "Security", PatternSub: "eval"}})
		assert.Equal(t, 1, n)
		require.Len(t, kept, 2)
		assert.Contains(t, kept[0].Description, "print")
	})

	t.Run("no suppressions is passthrough", func(t *testing.T) {
		kept, n := ApplySuppressions(in, nil)
		assert.Zero(t, n)
		assert.Equal(t, in, kept)
	})
}
