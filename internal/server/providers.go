package server

import (
	"log/slog"
	"net/http"
)

// registerProviderRoutes mounts the calendar and football endpoints.
func (s *Server) registerProviderRoutes() {
	if s.calendar != nil {
		s.router.Get("/api/calendar/events", s.handleCalendarEvents)
	}
	if s.football != nil {
		s.router.Get("/api/football", s.handleFootball)
	}
}

func (s *Server) handleCalendarEvents(w http.ResponseWriter, r *http.Request) {
	resp, err := s.calendar.Response(r.Context())
	if err != nil {
		slog.Error("fetching calendar events failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch calendar events")
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFootball(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.football.Data(r.Context()))
}
