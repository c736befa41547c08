package golden

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/codewithboateng/pyreview/internal/analyzer"
	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/reporting"
	"github.com/codewithboateng/pyreview/internal/rules"
)

// Runs the full analyze-sort-write pipeline the CLI uses and checks the
// artifacts are well formed and internally consistent.
func TestPipeline_AnalyzeAndWriteReports(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "legacy.py")
	if err := os.WriteFile(src, []byte(sampleLegacy), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	found := analyzer.RunOnFile(src, rules.DefaultSettings(), 0)
	if len(found) == 0 {
		t.Fatal("expected findings on the legacy sample")
	}
	paired := analyzer.Pair(src, found)
	issue.Sort(paired)

	// priorities come out descending
	for i := 1; i < len(paired); i++ {
		if issue.Rank(paired[i].Priority) > issue.Rank(paired[i-1].Priority) {
			t.Fatalf("sort order broken at %d: %s after %s", i, paired[i].Priority, paired[i-1].Priority)
		}
	}

	csvPath := filepath.Join(dir, "report.csv")
	if err := reporting.WriteCSV(csvPath, paired); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	jsonPath := filepath.Join(dir, "report.json")
	if err := reporting.WriteJSON(jsonPath, paired); err != nil {
		t.Fatalf("write json: %v", err)
	}

	// CSV parses back with the same row count
	f, err := os.Open(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.Comma = ';'
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read csv back: %v", err)
	}
	if got, want := len(rows)-1, len(paired); got != want {
		t.Fatalf("csv rows = %d, want %d", got, want)
	}

	// JSON parses back with matching categories
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var decoded []struct {
		Category string `json:"category"`
		Priority string `json:"priority"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode json report: %v", err)
	}
	if len(decoded) != len(paired) {
		t.Fatalf("json rows = %d, want %d", len(decoded), len(paired))
	}
	for i := range decoded {
		if decoded[i].Category != paired[i].Category || decoded[i].Priority != paired[i].Priority {
			t.Fatalf("json row %d = %+v, want %s/%s", i, decoded[i], paired[i].Category, paired[i].Priority)
		}
	}
}

func TestPipeline_MergeCollapsesDuplicates(t *testing.T) {
	found := analyzer.RunOnSource("legacy.py", []byte(sampleLegacy), rules.DefaultSettings(), 0)
	paired := analyzer.Pair("legacy.py", found)

	merged := issue.Merge(paired)
	if len(merged) > len(paired) {
		t.Fatalf("merge grew the report: %d > %d", len(merged), len(paired))
	}
	seen := map[string]bool{}
	for _, it := range merged {
		key := it.File + "|" + it.Category + "|" + it.Priority + "|" + it.Description
		if seen[key] {
			t.Fatalf("duplicate survived merge: %s", key)
		}
		seen[key] = true
	}
}
