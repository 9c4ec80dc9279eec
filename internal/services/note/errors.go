package note

import "errors"

// Note-related errors
var (
	// Validation errors
	ErrInvalidNoteID = errors.New("invalid note ID")
	ErrEmptyNote     = errors.New("note text cannot be empty")
	ErrNoteTooLong   = errors.New("note text cannot exceed 1000 characters")
	ErrEmptyColor    = errors.New("note color is required")
	ErrInvalidColor  = errors.New("note color must be a #RRGGBB hex value")
	ErrEmptyUser     = errors.New("note user is required")

	// Business logic errors
	ErrNoteNotFound = errors.New("note not found")
)
