package grid

import "errors"

// Placement and interaction errors
var (
	// ErrNoSpace indicates the row-major scan found no free anchor for the
	// requested footprint
	ErrNoSpace = errors.New("no available grid position")

	// ErrOccupied indicates an explicit placement conflicts with a placed widget
	ErrOccupied = errors.New("position overlaps a placed widget")

	// ErrOutOfBounds indicates a rectangle outside the grid
	ErrOutOfBounds = errors.New("position out of grid bounds")

	// ErrInteractionActive indicates a drag or resize is already in progress
	ErrInteractionActive = errors.New("another interaction is already active")

	// ErrNoInteraction indicates finalize was called with nothing in progress
	ErrNoInteraction = errors.New("no interaction in progress")

	// ErrUnknownWidget indicates the widget id is not placed on the grid
	ErrUnknownWidget = errors.New("widget not placed on grid")

	// ErrDuplicateWidget indicates the widget id is already placed
	ErrDuplicateWidget = errors.New("widget already placed on grid")
)
