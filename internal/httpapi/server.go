// Package httpapi exposes the engine's operations as a JSON API.
// The viewer identity comes from the X-Viewer header, supplied by the
// upstream identity provider; the engine treats it as an opaque key.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/pulsemed/worklist/internal/app"
)

// Server serves the worklist API.
type Server struct {
	container *app.Container
	logger    *slog.Logger
	http      *http.Server
}

// NewServer creates a Server for the given container.
func NewServer(c *app.Container, logger *slog.Logger) *Server {
	s := &Server{container: c, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/tasks", s.handleSubmit)
	mux.HandleFunc("GET /api/tasks/available", s.handleListAvailable)
	mux.HandleFunc("GET /api/tasks/mine", s.handleListMine)
	mux.HandleFunc("GET /api/tasks/{id}", s.handleGet)
	mux.HandleFunc("POST /api/tasks/{id}/acquire", s.handleAcquire)
	mux.HandleFunc("POST /api/tasks/{id}/extend", s.handleExtend)
	mux.HandleFunc("PUT /api/tasks/{id}/draft", s.handleSaveDraft)
	mux.HandleFunc("POST /api/tasks/{id}/complete", s.handleComplete)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.http = &http.Server{
		Addr:              c.Config.Server.Addr,
		Handler:           s.logRequests(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe starts the server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("worklist api listening", "addr", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// logRequests wraps the mux with request logging.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
