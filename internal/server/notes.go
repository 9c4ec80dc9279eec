package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"dashgrid/internal/api"
	"dashgrid/internal/models"
	"dashgrid/internal/services/note"
)

// registerNoteRoutes mounts all /api/notes endpoints.
func (s *Server) registerNoteRoutes() {
	s.router.Get("/api/notes", s.handleGetNotes)
	s.router.Post("/api/notes", s.handleCreateNote)
	s.router.Get("/api/notes/{id}", s.handleGetNote)
	s.router.Put("/api/notes/{id}", s.handleUpdateNote)
	s.router.Delete("/api/notes/{id}", s.handleDeleteNote)
}

func noteToAPI(n *models.Note) api.Note {
	return api.Note{
		ID:    n.ID,
		Note:  n.Note,
		Color: n.Color,
		User:  n.User,
		Time:  n.Time.Format("2006-01-02 15:04:05"),
	}
}

func noteID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (s *Server) handleGetNotes(w http.ResponseWriter, r *http.Request) {
	stored, err := s.notes.GetNotes(r.Context())
	if err != nil {
		slog.Error("fetching notes failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}

	notes := make([]api.Note, len(stored))
	for i, n := range stored {
		notes[i] = noteToAPI(n)
	}
	respondJSON(w, http.StatusOK, notes)
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	n, err := s.notes.GetNote(r.Context(), id)
	if err != nil {
		if errors.Is(err, note.ErrNoteNotFound) {
			respondError(w, http.StatusNotFound, "Note not found")
			return
		}
		slog.Error("fetching note failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch note")
		return
	}
	respondJSON(w, http.StatusOK, noteToAPI(n))
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var body api.Note
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.notes.CreateNote(r.Context(), note.CreateNoteRequest{
		Note:  body.Note,
		Color: body.Color,
		User:  body.User,
	})
	if err != nil {
		if isNoteValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("creating note failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create note")
		return
	}
	respondJSON(w, http.StatusCreated, noteToAPI(created))
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	var body api.Note
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := s.notes.UpdateNote(r.Context(), id, note.CreateNoteRequest{
		Note:  body.Note,
		Color: body.Color,
		User:  body.User,
	})
	if err != nil {
		switch {
		case errors.Is(err, note.ErrNoteNotFound):
			respondError(w, http.StatusNotFound, "Note not found")
		case isNoteValidationError(err):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("updating note failed", "id", id, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to update note")
		}
		return
	}
	respondJSON(w, http.StatusOK, api.SaveResponse{Success: true, Message: "Note updated successfully"})
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := noteID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	if err := s.notes.DeleteNote(r.Context(), id); err != nil {
		if errors.Is(err, note.ErrNoteNotFound) {
			respondError(w, http.StatusNotFound, "Note not found")
			return
		}
		slog.Error("deleting note failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete note")
		return
	}
	respondJSON(w, http.StatusOK, api.SaveResponse{Success: true, Message: "Note deleted successfully"})
}

func isNoteValidationError(err error) bool {
	for _, v := range []error{
		note.ErrInvalidNoteID,
		note.ErrEmptyNote,
		note.ErrNoteTooLong,
		note.ErrEmptyColor,
		note.ErrInvalidColor,
		note.ErrEmptyUser,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
