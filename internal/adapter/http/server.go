package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/couchcryptid/solar-wind-monitor/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Runner performs one monitoring pass.
type Runner interface {
	Run(ctx context.Context, simulate bool) domain.PipelineResult
}

// Server exposes the status API plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	runner     Runner
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /api/v1/status, /healthz, /readyz,
// and /metrics routes. statusRate caps status requests per second.
func NewServer(addr string, runner Runner, ready sharedobs.ReadinessChecker, statusRate int, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		runner:  runner,
		limiter: rate.NewLimiter(rate.Limit(statusRate), statusRate),
		logger:  logger,
	}

	mux.HandleFunc("GET /api/v1/status", s.handleStatus)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleStatus runs the pipeline once. A feed outage is still a 200: the
// body's status field tells the presenter to show a connection-lost state.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow() {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		return
	}

	simulate := false
	if v := r.URL.Query().Get("simulate"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "simulate must be a boolean"})
			return
		}
		simulate = b
	}

	writeJSON(w, http.StatusOK, s.runner.Run(r.Context(), simulate))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
