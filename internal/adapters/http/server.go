// Package http exposes the diagram service as a JSON API.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/archwize/archwize/pkg/mermaid"
)

// Service defines what the handler needs from the diagram service.
type Service interface {
	Generate(ctx context.Context, prompt string, orientation mermaid.Orientation) string
}

// GenerateRequest is the POST /generate body.
type GenerateRequest struct {
	Prompt      string `json:"prompt"`
	Orientation string `json:"orientation"`
}

// GenerateResponse is the wire shape for both success and failure.
type GenerateResponse struct {
	Success     bool   `json:"success"`
	MermaidCode string `json:"mermaid_code,omitempty"`
	Error       string `json:"error,omitempty"`
	Message     string `json:"message"`
}

// Server carries the handler dependencies.
type Server struct {
	svc    Service
	logger *slog.Logger
}

// NewHandler creates the HTTP handler for the diagram service.
func NewHandler(svc Service, logger *slog.Logger) http.Handler {
	s := &Server{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.Get("/healthz", s.health)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/generate", s.generate)
	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "ArchWize backend running"})
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, GenerateResponse{
			Error:   "invalid_request",
			Message: "Request body must be valid JSON",
		})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		s.writeJSON(w, http.StatusBadRequest, GenerateResponse{
			Error:   "missing_prompt",
			Message: "Prompt is required",
		})
		return
	}

	code := s.svc.Generate(r.Context(), req.Prompt, mermaid.ParseOrientation(req.Orientation))
	s.writeJSON(w, http.StatusOK, GenerateResponse{
		Success:     true,
		MermaidCode: code,
		Message:     "Diagram generated successfully",
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("response encode failed", "error", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
