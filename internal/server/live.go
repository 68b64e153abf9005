package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/lacquerai/calcform/internal/calc"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// liveForm runs one form per WebSocket connection. The client sends edits,
// the server answers every edit with the recomputed form state. Query
// parameters a, b and operation seed the form before the first message.
func (s *Server) liveForm(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	s.liveSessions.Add(1)
	s.metrics.liveSessions.Inc()
	defer func() {
		s.liveSessions.Add(-1)
		s.metrics.liveSessions.Dec()
	}()

	logger := log.With().Str("remote_addr", r.RemoteAddr).Logger()
	logger.Info().Msg("Live session opened")

	form := calc.NewForm()
	query := r.URL.Query()
	form.SetA(query.Get("a"))
	form.SetB(query.Get("b"))
	form.Select(query.Get("operation"))

	if err := s.sendSnapshot(conn, form); err != nil {
		logger.Error().Err(err).Msg("Failed to send initial state")
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn().Err(err).Msg("Live session closed unexpectedly")
			}
			break
		}

		if err := s.applyEdit(form, data, logger); err != nil {
			if writeErr := conn.WriteJSON(LiveMessage{Error: err.Error()}); writeErr != nil {
				logger.Error().Err(writeErr).Msg("Failed to send error")
				break
			}
			continue
		}

		if err := s.sendSnapshot(conn, form); err != nil {
			logger.Error().Err(err).Msg("Failed to send state")
			break
		}
	}

	logger.Info().Msg("Live session closed")
}

func (s *Server) applyEdit(form *calc.Form, data []byte, logger zerolog.Logger) error {
	var edit LiveEdit
	if err := json.Unmarshal(data, &edit); err != nil {
		return fmt.Errorf("invalid edit: %w", err)
	}

	if err := form.Set(edit.Field, string(edit.Value)); err != nil {
		return err
	}

	logger.Debug().
		Str("field", edit.Field).
		Str("value", string(edit.Value)).
		Str("result", form.Result()).
		Msg("Live edit applied")

	return nil
}

func (s *Server) sendSnapshot(conn *websocket.Conn, form *calc.Form) error {
	snapshot := form.Snapshot()
	s.metrics.ObserveEvaluation(snapshot)
	return conn.WriteJSON(LiveMessage{Snapshot: &snapshot})
}
