package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

type suppressionCreateReq struct {
	Category   string `json:"category"`
	File       string `json:"file,omitempty"`
	PatternSub string `json:"pattern_sub,omitempty"`
	Reason     string `json:"reason"`
	ExpiresAt  string `json:"expires_at"` // ISO8601
}

func (s *Server) handleListSuppressions(w http.ResponseWriter, r *http.Request) {
	active := r.URL.Query().Get("active")
	only := active == "1" || active == "true" || active == "yes"
	sups, err := s.DB.ListSuppressions(only)
	if err != nil {
		s.err(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": sups, "active_only": only})
}

func (s *Server) handleCreateSuppression(w http.ResponseWriter, r *http.Request) {
	var in suppressionCreateReq
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.err(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.Category == "" || in.Reason == "" || in.ExpiresAt == "" {
		s.err(w, http.StatusBadRequest, "category, reason, expires_at required")
		return
	}
	exp, err := time.Parse(time.RFC3339Nano, in.ExpiresAt)
	if err != nil {
		exp, err = time.Parse(time.RFC3339, in.ExpiresAt)
		if err != nil {
			s.err(w, http.StatusBadRequest, "bad expires_at (use RFC3339)")
			return
		}
	}
	u, ok := userFromCtx(r.Context())
	if !ok {
		s.err(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := s.DB.CreateSuppression(in.Category, in.File, in.PatternSub, in.Reason, u.Username, exp)
	if err != nil {
		s.err(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	_ = s.UserStore.LogAudit(u.Username, "suppression:create", "", map[string]any{"id": id, "category": in.Category})
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleRevokeSuppression(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		s.err(w, http.StatusBadRequest, "invalid id")
		return
	}
	u, ok := userFromCtx(r.Context())
	if !ok {
		s.err(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := s.DB.RevokeSuppression(id); err != nil {
		s.err(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}
	_ = s.UserStore.LogAudit(u.Username, "suppression:revoke", "", map[string]any{"id": id})
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
