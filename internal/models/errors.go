package models

import "errors"

// Domain errors shared across stores and services
var (
	// ErrPanelNotFound indicates a lookup for a panel key that is not stored
	ErrPanelNotFound = errors.New("panel not found")

	// ErrNoteNotFound indicates a lookup or mutation for a missing note id
	ErrNoteNotFound = errors.New("note not found")
)
