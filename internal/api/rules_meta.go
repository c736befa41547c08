package api

import "net/http"

// GET /api/v1/rules (names + defaults; no auth needed for read-only)
func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	type R struct {
		Name      string `json:"name"`
		Category  string `json:"category"`
		Priority  string `json:"priority"`
		Impact    string `json:"impact,omitempty"`
		Heuristic bool   `json:"heuristic"`
	}
	var out []R
	for _, rr := range s.Rules {
		out = append(out, R{
			Name: rr.Name, Category: rr.Category, Priority: rr.Priority,
			Impact: rr.Impact, Heuristic: rr.Heuristic,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out, "count": len(out)})
}
