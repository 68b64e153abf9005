package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lacquerai/calcform/internal/calc"
	"github.com/rs/zerolog/log"
)

// HTTP Handlers

// listOperations returns the picker entries in order
func (s *Server) listOperations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"operations": ListOperations(),
	})
}

// evaluatePost evaluates a JSON request body
func (s *Server) evaluatePost(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest

	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
			return
		}
	}

	s.respondEvaluation(w, req)
}

// evaluateGet evaluates the a, b and operation query parameters
func (s *Server) evaluateGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	s.respondEvaluation(w, EvaluateRequest{
		A:         Operand(query.Get("a")),
		B:         Operand(query.Get("b")),
		Operation: query.Get("operation"),
	})
}

func (s *Server) respondEvaluation(w http.ResponseWriter, req EvaluateRequest) {
	form := calc.NewForm()
	form.SetA(string(req.A))
	form.SetB(string(req.B))
	form.Select(req.Operation)

	snapshot := form.Snapshot()
	s.metrics.ObserveEvaluation(snapshot)

	log.Debug().
		Str("a", snapshot.A).
		Str("b", snapshot.B).
		Str("operation", snapshot.Operation).
		Str("result", snapshot.Result).
		Msg("Evaluated")

	writeJSON(w, http.StatusOK, newEvaluateResponse(snapshot))
}

// healthCheck returns server health status
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"live_sessions": s.ActiveSessions(),
		"timestamp":     time.Now(),
	})
}

// handleOptions handles CORS preflight requests
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	// CORS headers are already set by middleware
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
