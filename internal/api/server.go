// Package api serves stored runs, issues and suppressions over HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/rules"
	"github.com/codewithboateng/pyreview/internal/storage"
	"github.com/codewithboateng/pyreview/internal/summary"
)

// Store is the minimal contract the API needs.
type Store interface {
	ListRuns(limit, offset int) ([]storage.RunRow, error)
	LoadRun(id string) (issue.Run, error)
	ListIssues(runID, minPriority string) ([]issue.FileIssue, error)

	ListSuppressions(activeOnly bool) ([]storage.Suppression, error)
	CreateSuppression(category, file, pattern, reason, createdBy string, expires time.Time) (int64, error)
	RevokeSuppression(id int64) error
}

// UserStore is the auth/audit contract the API uses.
type UserStore interface {
	GetUserByUsername(string) (storage.User, string, error)
	CreateSession(int64, string, time.Time) error
	GetSession(string) (storage.User, error)
	DeleteSession(string) error
	LogAudit(username, action, resource string, meta map[string]any) error
}

type Server struct {
	DB              Store
	UserStore       UserStore
	Rules           []rules.Rule
	Logger          *slog.Logger
	SessionDuration time.Duration
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	withCORS := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS, POST")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			h(w, r)
		}
	}

	// Health
	mux.HandleFunc("GET /api/v1/health", withCORS(s.handleHealth))

	// Auth
	mux.HandleFunc("POST /api/v1/auth/login", withCORS(s.handleLogin))
	mux.HandleFunc("POST /api/v1/auth/logout", withCORS(withAuth(s, s.handleLogout, "auth:logout")))
	mux.HandleFunc("GET /api/v1/me", withCORS(withAuth(s, s.handleMe, "me")))

	// Runs
	mux.HandleFunc("GET /api/v1/runs", withCORS(s.handleListRuns))
	mux.HandleFunc("GET /api/v1/runs/latest", withCORS(s.handleGetLatest))
	mux.HandleFunc("GET /api/v1/runs/{id}", withCORS(s.handleGetRun))
	mux.HandleFunc("GET /api/v1/runs/{id}/issues", withCORS(s.handleListIssues))
	mux.HandleFunc("GET /api/v1/runs/{id}/summary", withCORS(s.handleRunSummary))

	// Rules inventory
	mux.HandleFunc("GET /api/v1/rules", withCORS(s.handleRules))

	// Suppressions
	mux.HandleFunc("GET /api/v1/suppressions", withCORS(withAuth(s, s.handleListSuppressions, "suppressions:list")))
	mux.HandleFunc("POST /api/v1/suppressions", withCORS(withAdmin(s, s.handleCreateSuppression, "suppressions:create")))
	mux.HandleFunc("POST /api/v1/suppressions/{id}/revoke", withCORS(withAdmin(s, s.handleRevokeSuppression, "suppressions:revoke")))

	// Fallback 404
	mux.HandleFunc("/", withCORS(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := clamp(parseInt(q.Get("limit"), 20), 1, 200)
	offset := parseInt(q.Get("offset"), 0)

	rows, err := s.DB.ListRuns(limit, offset)
	if err != nil {
		s.err(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": rows, "limit": limit, "offset": offset,
	})
}

func (s *Server) handleGetLatest(w http.ResponseWriter, r *http.Request) {
	rows, err := s.DB.ListRuns(1, 0)
	if err != nil || len(rows) == 0 {
		s.err(w, http.StatusNotFound, "no runs")
		return
	}
	run, err := s.DB.LoadRun(rows[0].ID)
	if err != nil {
		s.err(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.DB.LoadRun(r.PathValue("id"))
	if err != nil {
		s.err(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleListIssues(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	min := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("min_priority")))
	if min == "" {
		min = issue.Low
	}
	items, err := s.DB.ListIssues(id, min)
	if err != nil {
		s.err(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id": id, "min_priority": min, "items": items,
	})
}

func (s *Server) handleRunSummary(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	run, err := s.DB.LoadRun(id)
	if err != nil {
		s.err(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id": id, "source": run.Source, "summary": summary.Build(run.Issues),
	})
}

func (s *Server) err(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
