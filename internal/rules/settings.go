package rules

import "github.com/codewithboateng/pyreview/internal/issue"

// Settings tunes rule behavior for a run.
type Settings struct {
	MinPriority   string
	MaxComplexity int // complexity threshold for the size rule
	MaxFuncLines  int // line-count threshold for the size rule
	Disabled      map[string]bool
}

// DefaultSettings returns the thresholds used when no config overrides them.
func DefaultSettings() Settings {
	return Settings{
		MinPriority:   issue.Low,
		MaxComplexity: 10,
		MaxFuncLines:  50,
		Disabled:      map[string]bool{},
	}
}

// Normalize fills zero values with defaults so partially populated
// config structs behave predictably.
func (s Settings) Normalize() Settings {
	d := DefaultSettings()
	if s.MinPriority == "" {
		s.MinPriority = d.MinPriority
	}
	if s.MaxComplexity == 0 {
		s.MaxComplexity = d.MaxComplexity
	}
	if s.MaxFuncLines == 0 {
		s.MaxFuncLines = d.MaxFuncLines
	}
	if s.Disabled == nil {
		s.Disabled = map[string]bool{}
	}
	return s
}
