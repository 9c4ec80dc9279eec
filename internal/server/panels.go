package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dashgrid/internal/api"
	"dashgrid/internal/services/layout"
)

// registerPanelRoutes mounts all /api/panels endpoints.
func (s *Server) registerPanelRoutes() {
	s.router.Get("/api/panels", s.handleGetPanels)
	s.router.Post("/api/panels", s.handleSavePanels)
	s.router.Get("/api/panels/{panelKey}", s.handleGetPanel)
	s.router.Delete("/api/panels/{panelKey}", s.handleDeletePanel)
}

func (s *Server) handleGetPanels(w http.ResponseWriter, r *http.Request) {
	stored, err := s.layout.GetLayout(r.Context())
	if err != nil {
		slog.Error("fetching panels failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch panels")
		return
	}
	respondJSON(w, http.StatusOK, api.PanelsResponse{Panels: api.FromModel(stored)})
}

func (s *Server) handleSavePanels(w http.ResponseWriter, r *http.Request) {
	var req api.SavePanelsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.layout.SaveLayout(r.Context(), api.ToModel(req.Panels)); err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("saving panels failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save panels")
		return
	}

	respondJSON(w, http.StatusOK, api.SaveResponse{
		Success: true,
		Message: "Panels saved successfully",
	})
}

func (s *Server) handleGetPanel(w http.ResponseWriter, r *http.Request) {
	panelKey := chi.URLParam(r, "panelKey")

	panel, err := s.layout.GetPanel(r.Context(), panelKey)
	if err != nil {
		switch {
		case errors.Is(err, layout.ErrPanelNotFound):
			respondError(w, http.StatusNotFound, "Panel not found")
		case errors.Is(err, layout.ErrInvalidPanelKey):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("fetching panel failed", "panel", panelKey, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch panel")
		}
		return
	}

	respondJSON(w, http.StatusOK, api.FromPanel(panel))
}

func (s *Server) handleDeletePanel(w http.ResponseWriter, r *http.Request) {
	panelKey := chi.URLParam(r, "panelKey")

	if err := s.layout.DeletePanel(r.Context(), panelKey); err != nil {
		switch {
		case errors.Is(err, layout.ErrPanelNotFound):
			respondError(w, http.StatusNotFound, "Panel not found")
		case errors.Is(err, layout.ErrInvalidPanelKey):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("deleting panel failed", "panel", panelKey, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to delete panel")
		}
		return
	}

	respondJSON(w, http.StatusOK, api.SaveResponse{
		Success: true,
		Message: "Panel deleted successfully",
	})
}

// isValidationError distinguishes client mistakes from storage failures.
func isValidationError(err error) bool {
	for _, v := range []error{
		layout.ErrInvalidPanelKey,
		layout.ErrEmptyPanelTitle,
		layout.ErrPanelTitleTooLong,
		layout.ErrInvalidWidgetID,
		layout.ErrDuplicateWidgetID,
		layout.ErrEmptyWidgetTitle,
		layout.ErrTitleTooLong,
		layout.ErrInvalidColor,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
