package layout

import "errors"

// Layout-related errors
var (
	// Validation errors
	ErrInvalidPanelKey   = errors.New("panel key must be a non-empty lowercase slug")
	ErrEmptyPanelTitle   = errors.New("panel title cannot be empty")
	ErrPanelTitleTooLong = errors.New("panel title cannot exceed 100 characters")
	ErrInvalidWidgetID   = errors.New("widget ID must be positive")
	ErrDuplicateWidgetID = errors.New("widget ID appears more than once in the layout")
	ErrEmptyWidgetTitle  = errors.New("widget title cannot be empty")
	ErrTitleTooLong      = errors.New("widget title cannot exceed 100 characters")
	ErrInvalidColor      = errors.New("widget color must be a #RRGGBB hex value")

	// Business logic errors
	ErrPanelNotFound = errors.New("panel not found")
)
