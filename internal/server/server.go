// Package server exposes the dashboard HTTP API: panel layout persistence,
// notes, and the calendar/football data providers.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dashgrid/internal/calendar"
	"dashgrid/internal/football"
	"dashgrid/internal/services/layout"
	"dashgrid/internal/services/note"
)

// Server wires the services behind the HTTP API.
type Server struct {
	addr     string
	router   chi.Router
	layout   layout.Service
	notes    note.Service
	calendar *calendar.Service
	football *football.Service
}

// New creates a server and mounts every route. The calendar and football
// services may be nil; their endpoints then return 404.
func New(addr string, layoutSvc layout.Service, noteSvc note.Service,
	calendarSvc *calendar.Service, footballSvc *football.Service) *Server {

	s := &Server{
		addr:     addr,
		router:   chi.NewRouter(),
		layout:   layoutSvc,
		notes:    noteSvc,
		calendar: calendarSvc,
		football: footballSvc,
	}

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RedirectSlashes)

	s.registerPanelRoutes()
	s.registerNoteRoutes()
	s.registerProviderRoutes()

	s.router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "dashgrid",
		})
	})

	return s
}

// Handler returns the mounted router, mostly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
