package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/rules"
)

func TestRunOnSource_FindsIssues(t *testing.T) {
	src := []byte(`try:
    risky()
except:
    pass
`)
	got := RunOnSource("sample.py", src, rules.DefaultSettings(), 0)
	require.NotEmpty(t, got)
	found := false
	for _, it := range got {
		if it.Category == "Error Handling" && it.Priority == issue.High {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRunOnSource_UnparseableYieldsNothing(t *testing.T) {
	got := RunOnSource("broken.py", []byte("def broken(:\n    pass\n"), rules.DefaultSettings(), 0)
	assert.Empty(t, got)
}

func TestRunOnFile_MissingFileYieldsNothing(t *testing.T) {
	got := RunOnFile(filepath.Join(t.TempDir(), "absent.py"), rules.DefaultSettings(), 0)
	assert.Empty(t, got)
}

func TestRunOnFile_ReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.py")
	require.NoError(t, os.WriteFile(path, []byte("print(\"hi\")\n"), 0o644))

	got := RunOnFile(path, rules.DefaultSettings(), 0)
	require.NotEmpty(t, got)
	assert.Equal(t, "Code Cleanliness", got[0].Category)
}

func TestTruncateLines(t *testing.T) {
	assert.Equal(t, "1,2,+3 more", truncateLines("1,2,3,4,5", 2))
	assert.Equal(t, "1,2,3", truncateLines("1,2,3", 3))
	// ranges and single lines pass through whatever the cap
	assert.Equal(t, "10-99", truncateLines("10-99", 1))
	assert.Equal(t, "7", truncateLines("7", 1))
}

func TestRunOnSource_AppliesMaxLines(t *testing.T) {
	// ten separate TODO lines produce one issue per line from the text
	// scanner; UnusedVariables-style multi-line specs are what max-lines
	// caps, so build one via merge instead
	src := []byte("a_one = 1\na_two = 2\na_three = 3\n")
	items := Pair("sample.py", RunOnSource("sample.py", src, rules.DefaultSettings(), 2))
	merged := issue.Merge(items)
	for _, it := range merged {
		assert.NotContains(t, it.ImpactedLines, "more")
	}
}

func TestPair(t *testing.T) {
	in := []issue.Issue{{Category: "Style"}, {Category: "Security"}}
	out := Pair("x.py", in)
	require.Len(t, out, 2)
	assert.Equal(t, "x.py", out[0].File)
	assert.Equal(t, "Security", out[1].Issue.Category)
}
