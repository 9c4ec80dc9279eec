package note

import (
	"context"
	"errors"
	"regexp"

	"dashgrid/internal/database"
	"dashgrid/internal/models"
)

// Service defines all note-related business operations
type Service interface {
	// Read operations
	GetNotes(ctx context.Context) ([]*models.Note, error)
	GetNote(ctx context.Context, id int64) (*models.Note, error)

	// Write operations
	CreateNote(ctx context.Context, req CreateNoteRequest) (*models.Note, error)
	UpdateNote(ctx context.Context, id int64, req CreateNoteRequest) error
	DeleteNote(ctx context.Context, id int64) error
}

// CreateNoteRequest encapsulates data for creating or updating a note
type CreateNoteRequest struct {
	Note  string
	Color string
	User  string
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// service implements Service backed by the note repository
type service struct {
	repo *database.NoteRepo
}

// NewService creates a new note service
func NewService(repo *database.NoteRepo) Service {
	return &service{repo: repo}
}

// GetNotes retrieves every note, newest first
func (s *service) GetNotes(ctx context.Context) ([]*models.Note, error) {
	return s.repo.GetNotes(ctx)
}

// GetNote retrieves a single note
func (s *service) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	if id <= 0 {
		return nil, ErrInvalidNoteID
	}
	n, err := s.repo.GetNote(ctx, id)
	if errors.Is(err, models.ErrNoteNotFound) {
		return nil, ErrNoteNotFound
	}
	return n, err
}

// CreateNote validates and stores a new note
func (s *service) CreateNote(ctx context.Context, req CreateNoteRequest) (*models.Note, error) {
	if err := validateNote(req); err != nil {
		return nil, err
	}
	return s.repo.CreateNote(ctx, req.Note, req.Color, req.User)
}

// UpdateNote validates and replaces an existing note's content
func (s *service) UpdateNote(ctx context.Context, id int64, req CreateNoteRequest) error {
	if id <= 0 {
		return ErrInvalidNoteID
	}
	if err := validateNote(req); err != nil {
		return err
	}
	err := s.repo.UpdateNote(ctx, id, req.Note, req.Color, req.User)
	if errors.Is(err, models.ErrNoteNotFound) {
		return ErrNoteNotFound
	}
	return err
}

// DeleteNote removes a note
func (s *service) DeleteNote(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidNoteID
	}
	err := s.repo.DeleteNote(ctx, id)
	if errors.Is(err, models.ErrNoteNotFound) {
		return ErrNoteNotFound
	}
	return err
}

// validateNote requires note, color, and user; a request missing any of them
// is rejected before it reaches the store
func validateNote(req CreateNoteRequest) error {
	if req.Note == "" {
		return ErrEmptyNote
	}
	if len(req.Note) > 1000 {
		return ErrNoteTooLong
	}
	if req.Color == "" {
		return ErrEmptyColor
	}
	if !colorPattern.MatchString(req.Color) {
		return ErrInvalidColor
	}
	if req.User == "" {
		return ErrEmptyUser
	}
	return nil
}
