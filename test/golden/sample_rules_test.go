package golden

import (
	"strings"
	"testing"

	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/rules"
)

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// sampleLegacy is a small but realistic slice of a legacy service module.
// It deliberately trips a spread of categories.
const sampleLegacy = `import os
import pickle
from threading import Thread

CACHE = {}

def load_state(path):
    f = open(path)
    data = pickle.loads(f.read())
    return data

def start_workers(jobs):
    for i in range(len(jobs)):
        t = Thread(target=jobs[i])
        t.start()

def lookup(key):
    try:
        return CACHE[key]
    except:
        print("miss")
        return None

def check(flag):
    if flag == None:
        os.system("cleanup.sh")
`

func analyzeSample(t *testing.T, minPriority string) []issue.Issue {
	t.Helper()
	s := rules.DefaultSettings()
	s.MinPriority = minPriority
	return rules.Analyze("legacy.py", []byte(sampleLegacy), s)
}

func TestSample_LowPriority_ContainsKeyCategories(t *testing.T) {
	got := analyzeSample(t, issue.Low)
	if len(got) == 0 {
		t.Fatal("expected findings on the legacy sample")
	}

	counts := map[string]int{}
	for _, it := range got {
		counts[it.Category]++
	}

	required := []string{
		"Error Handling",
		"Security",
		"Resource Management",
		"Concurrency",
		"Code Cleanliness",
		"Style/Maintainability",
	}
	for _, cat := range required {
		if counts[cat] == 0 {
			t.Errorf("missing category %q in findings: %v", cat, counts)
		}
	}
}

func TestSample_FindsSpecificIssues(t *testing.T) {
	got := analyzeSample(t, issue.Low)

	wantSubstrings := []string{
		"except:",                 // bare except clause
		"with open(",              // file handle without a with block
		"pickle",                  // unsafe deserialization
		"os.system",               // shell execution
		"started but not joined",  // thread lifecycle
		"range(len(",              // non-pythonic iteration
		"is (not) None",           // equality against None
		"print",                   // print in library code
	}
	for _, sub := range wantSubstrings {
		found := false
		for _, it := range got {
			if containsFold(it.Description, sub) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no finding mentioning %q", sub)
		}
	}
}

func TestSample_MediumThresholdDropsLow(t *testing.T) {
	low := analyzeSample(t, issue.Low)
	med := analyzeSample(t, issue.Medium)

	if len(med) >= len(low) {
		t.Fatalf("MEDIUM threshold should drop findings: low=%d medium=%d", len(low), len(med))
	}
	for _, it := range med {
		if issue.Rank(it.Priority) < issue.Rank(issue.Medium) {
			t.Errorf("LOW finding survived the MEDIUM threshold: %+v", it)
		}
	}
}

func TestSample_Deterministic(t *testing.T) {
	first := analyzeSample(t, issue.Low)
	for i := 0; i < 3; i++ {
		again := analyzeSample(t, issue.Low)
		if len(again) != len(first) {
			t.Fatalf("run %d: got %d findings, want %d", i, len(again), len(first))
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("run %d: finding %d differs: %+v vs %+v", i, j, first[j], again[j])
			}
		}
	}
}
