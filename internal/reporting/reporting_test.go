package reporting

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewithboateng/pyreview/internal/issue"
)

func sampleIssues() []issue.FileIssue {
	return []issue.FileIssue{
		{File: "/tmp/project/app.py", Issue: issue.Issue{
			Category:        "Error Handling",
			Priority:        issue.High,
			ImpactedLines:   "12",
			PotentialImpact: "Swallows every error",
			Description:     "Bare 'except:' clause",
		}},
		{File: "/tmp/project/app.py", Issue: issue.Issue{
			Category:        "Code Cleanliness",
			Priority:        issue.Low,
			ImpactedLines:   "3,7",
			PotentialImpact: "Noise in production output",
			Description:     "print() call in module code",
		}},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, WriteCSV(path, sampleIssues()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"category of issue", "priority of issue", "impacted lines",
		"potential impact", "description",
	}, rows[0])
	assert.Equal(t, "Error Handling", rows[1][0])
	assert.Equal(t, "HIGH", rows[1][1])
	assert.Equal(t, "12", rows[1][2])
	// descriptions carry the base file name
	assert.Equal(t, "app.py: Bare 'except:' clause", rows[1][4])
	assert.Equal(t, "app.py: print() call in module code", rows[2][4])
}

func TestWriteCSV_EmptyStillHasHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteCSV(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "category of issue;priority of issue;impacted lines;potential impact;description\n", string(data))
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(path, sampleIssues()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "/tmp/project/app.py", got[0]["file"])
	assert.Equal(t, "Error Handling", got[0]["category"])
	assert.Equal(t, "HIGH", got[0]["priority"])
	assert.Equal(t, "12", got[0]["impacted_lines"])
	assert.Equal(t, "app.py: Bare 'except:' clause", got[0]["description"])
}

func TestWriteJSON_EmptyIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, WriteJSON(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestWriteRunJSON(t *testing.T) {
	dir := t.TempDir()
	run := &issue.Run{
		ID:          "run-42",
		StartedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Source:      "app.py",
		ToolVersion: issue.Version,
		Issues:      sampleIssues(),
	}
	path, err := WriteRunJSON("run-42", dir, run)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "run-42.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got issue.Run
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "run-42", got.ID)
	assert.Equal(t, issue.Version, got.ToolVersion)
	require.Len(t, got.Issues, 2)
	// stored runs keep raw descriptions, no file prefix
	assert.Equal(t, "Bare 'except:' clause", got.Issues[0].Description)
}

func TestWriteTextLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.log")
	require.NoError(t, WriteTextLog(path, "/tmp/project/app.py", sampleIssues()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")

	assert.Equal(t, "pyreview summary for app.py", lines[0])
	assert.Equal(t, strings.Repeat("=", 72), lines[1])
	assert.Equal(t, "Total issues: 2", lines[2])
	assert.Equal(t, "By priority: HIGH=1, MEDIUM=0, LOW=1", lines[3])
	assert.Equal(t, "By category:", lines[4])
	assert.Equal(t, "  - Code Cleanliness: 1", lines[5])
	assert.Equal(t, "  - Error Handling: 1", lines[6])
	assert.Contains(t, string(data), "Examples:")
	// examples keep the raw description
	assert.Contains(t, string(data), "  • [HIGH] Error Handling @ 12 :: Bare 'except:' clause")
}

func TestWriteTextLog_ExampleLimit(t *testing.T) {
	var many []issue.FileIssue
	for i := 0; i < 15; i++ {
		many = append(many, issue.FileIssue{File: "x.py", Issue: issue.Issue{
			Category: "Style", Priority: issue.Low, ImpactedLines: "1",
			Description: "something",
		}})
	}
	path := filepath.Join(t.TempDir(), "report.log")
	require.NoError(t, WriteTextLog(path, "x.py", many))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, exampleLimit, strings.Count(string(data), "• ["))
}

func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, WriteHTML(path, "/tmp/project/app.py", sampleIssues()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "app.py")
	assert.Contains(t, html, "Error Handling")
	assert.Contains(t, html, "Bare &#39;except:&#39; clause")
}

func TestDiffRuns(t *testing.T) {
	base := &issue.Run{ID: "run-1", Issues: []issue.FileIssue{
		{File: "a.py", Issue: issue.Issue{Category: "Style", Priority: issue.Low, ImpactedLines: "3", Description: "old only"}},
		{File: "a.py", Issue: issue.Issue{Category: "Security", Priority: issue.Medium, ImpactedLines: "10", Description: "moved and raised"}},
		{File: "a.py", Issue: issue.Issue{Category: "Correctness", Priority: issue.High, ImpactedLines: "7", Description: "stable"}},
	}}
	head := &issue.Run{ID: "run-2", Issues: []issue.FileIssue{
		{File: "a.py", Issue: issue.Issue{Category: "Security", Priority: issue.High, ImpactedLines: "14", Description: "moved and raised"}},
		{File: "a.py", Issue: issue.Issue{Category: "Correctness", Priority: issue.High, ImpactedLines: "7", Description: "stable"}},
		{File: "a.py", Issue: issue.Issue{Category: "Resources", Priority: issue.Medium, ImpactedLines: "2", Description: "new only"}},
	}}

	d := DiffRuns("run-1", "run-2", base, head)

	assert.Equal(t, "run-1", d.BaseID)
	assert.Equal(t, "run-2", d.HeadID)
	assert.Equal(t, 1, d.Summary.NewCount)
	assert.Equal(t, 1, d.Summary.RemovedCount)
	assert.Equal(t, 1, d.Summary.ChangedCount)

	require.Len(t, d.New, 1)
	assert.Equal(t, "new only", d.New[0].Description)
	require.Len(t, d.Removed, 1)
	assert.Equal(t, "old only", d.Removed[0].Description)
	require.Len(t, d.Changed, 1)
	assert.ElementsMatch(t, []string{"priority", "impacted_lines"}, d.Changed[0].Changed)
	assert.Equal(t, "MEDIUM", d.Changed[0].Base.Priority)
	assert.Equal(t, "HIGH", d.Changed[0].Head.Priority)
}

func TestDiffRuns_IdentityIgnoresCaseAndSpace(t *testing.T) {
	base := &issue.Run{Issues: []issue.FileIssue{
		{File: "A.PY", Issue: issue.Issue{Category: "style", Priority: issue.Low, ImpactedLines: "1", Description: "  Same Thing "}},
	}}
	head := &issue.Run{Issues: []issue.FileIssue{
		{File: "a.py", Issue: issue.Issue{Category: "Style", Priority: issue.Low, ImpactedLines: "1", Description: "same thing"}},
	}}
	d := DiffRuns("b", "h", base, head)
	assert.Equal(t, 0, d.Summary.NewCount)
	assert.Equal(t, 0, d.Summary.RemovedCount)
	assert.Equal(t, 0, d.Summary.ChangedCount)
}

func TestWriteDiffJSON(t *testing.T) {
	dir := t.TempDir()
	base := &issue.Run{Issues: nil}
	head := &issue.Run{Issues: []issue.FileIssue{
		{File: "a.py", Issue: issue.Issue{Category: "Style", Priority: issue.Low, ImpactedLines: "1", Description: "fresh"}},
	}}
	path, err := WriteDiffJSON("run-1", "run-2", dir, base, head)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "diff_run-1__run-2.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "run-1", got["base_id"])
	assert.Equal(t, "run-2", got["head_id"])
}
