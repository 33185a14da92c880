package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gipersonic/miet/internal/logging"
	"github.com/gipersonic/miet/pkg/domain"
)

// Engine is the conversational core the gateway fronts.
type Engine interface {
	Handle(ctx context.Context, ev domain.Event) (domain.Render, error)
	OpenRelay(ctx context.Context, operatorID, userID string) error
}

// EventRequest is the POST /v1/events body.
type EventRequest struct {
	UserID     string `json:"user_id"`
	Text       string `json:"text"`
	IsOperator bool   `json:"is_operator,omitempty"`
}

// RenderResponse mirrors domain.Render on the wire.
type RenderResponse struct {
	Text    string   `json:"text"`
	Choices []string `json:"choices,omitempty"`
}

// ReplyRequest is the POST /v1/reply/{userID} body.
type ReplyRequest struct {
	OperatorID string `json:"operator_id"`
}

// Server exposes the engine over HTTP.
type Server struct {
	engine   Engine
	logger   *slog.Logger
	registry *prometheus.Registry
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures request logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithMetricsRegistry mounts GET /metrics over the given registry.
func WithMetricsRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) { s.registry = registry }
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		engine: engine,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Post("/v1/events", server.handleEvent)
	r.Post("/v1/reply/{userID}", server.handleReply)
	r.Get("/healthz", server.handleHealth)
	if server.registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(server.registry, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleEvent runs one inbound message through the engine.
func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var body EventRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("event: invalid request body", "err", err)
		return
	}
	if body.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	render, err := s.engine.Handle(r.Context(), domain.Event{
		UserID:     body.UserID,
		Text:       body.Text,
		IsOperator: body.IsOperator,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Event error: %v", err), http.StatusInternalServerError)
		s.logger.Error("event handling failed", "user_id", body.UserID, "err", err)
		return
	}

	s.writeJSON(w, RenderResponse{Text: render.Text, Choices: render.Choices})
}

// handleReply arms an operator's one-shot reply link to a user.
func (s *Server) handleReply(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var body ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("reply: invalid request body", "err", err)
		return
	}
	if body.OperatorID == "" {
		http.Error(w, "operator_id is required", http.StatusBadRequest)
		return
	}

	if err := s.engine.OpenRelay(r.Context(), body.OperatorID, userID); err != nil {
		http.Error(w, fmt.Sprintf("Reply error: %v", err), http.StatusInternalServerError)
		s.logger.Error("failed to open relay", "operator_id", body.OperatorID, "user_id", userID, "err", err)
		return
	}

	s.writeJSON(w, map[string]string{"status": "armed"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
