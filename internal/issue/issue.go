package issue

import "time"

const Version = "1.0.1"

// Priority levels, strongest first.
const (
	High   = "HIGH"
	Medium = "MEDIUM"
	Low    = "LOW"
)

// Issue is one finding produced by a rule.
type Issue struct {
	Category        string `json:"category"`
	Priority        string `json:"priority"` // HIGH|MEDIUM|LOW
	ImpactedLines   string `json:"impacted_lines"`
	PotentialImpact string `json:"potential_impact"`
	Description     string `json:"description"`
}

// FileIssue pairs an issue with the file it was found in.
type FileIssue struct {
	File string `json:"file"`
	Issue
}

// Run is one recorded analysis of a single file.
type Run struct {
	ID          string      `json:"id"`
	StartedAt   time.Time   `json:"started_at"`
	Source      string      `json:"source,omitempty"` // analyzed file path
	ToolVersion string      `json:"tool_version,omitempty"`
	MinPriority string      `json:"min_priority,omitempty"`
	Merged      bool        `json:"merged,omitempty"`
	Issues      []FileIssue `json:"issues"`
}

// Rank maps a priority label to its order; unknown labels rank as LOW.
func Rank(priority string) int {
	switch priority {
	case High:
		return 3
	case Medium:
		return 2
	default:
		return 1
	}
}

// MaxPriority returns the stronger of two priorities.
func MaxPriority(a, b string) string {
	if Rank(a) >= Rank(b) {
		return a
	}
	return b
}
