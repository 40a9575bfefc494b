// Package api provides the JSON HTTP surface for fitcoach.
//
// Routes live under /api/v1. Session identity is a uuid cookie provisioned
// on first request; transcripts are held in memory only.
package api

import (
	"errors"
	"net/http"

	"github.com/fitcoach/fitcoach/internal/chat"
	"github.com/fitcoach/fitcoach/internal/log"
)

// ServerConfig contains configuration for creating the API server.
type ServerConfig struct {
	Logger   log.Logger
	Sessions *SessionStore // Required
}

// Server is the JSON API HTTP server.
type Server struct {
	mux *http.ServeMux
}

// NewServer creates a new API server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Sessions == nil {
		return nil, errors.New("session store is required")
	}
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}

	ch := &chatHandler{
		logger:   cfg.Logger,
		sessions: cfg.Sessions,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/chat", ch.send)
	mux.HandleFunc("GET /api/v1/chat/messages", ch.messages)
	mux.HandleFunc("POST /api/v1/chat/reset", ch.reset)
	mux.HandleFunc("GET /api/v1/topics", topicsHandler(cfg.Logger))

	// Middleware stack (outermost first): Recovery → RequestID → Logging.
	// RequestID precedes Logging so request_id is available in log attributes.
	var handler http.Handler = mux
	handler = loggingMiddleware(cfg.Logger)(handler)
	handler = requestIDMiddleware()(handler)
	handler = recoveryMiddleware(cfg.Logger)(handler)

	// Health probe bypasses the middleware stack
	topMux := http.NewServeMux()
	topMux.HandleFunc("GET /healthz", healthHandler(cfg.Logger))
	topMux.Handle("/", handler)

	return &Server{mux: topMux}, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// healthHandler serves liveness probes with {"status":"ok"}.
func healthHandler(logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	}
}

type topicsResponse struct {
	QuickPrompts []chat.QuickPrompt `json:"quick_prompts"`
	Topics       []chat.Topic       `json:"topics"`
}

// topicsHandler serves the fixed quick prompt and explore topic lists.
func topicsHandler(logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, topicsResponse{
			QuickPrompts: chat.QuickPrompts(),
			Topics:       chat.Topics(),
		}, logger)
	}
}
