package grid

import "log/slog"

// interaction is the engine-wide interaction state. Only one widget may be
// dragged or resized at a time.
type interaction int

const (
	idle interaction = iota
	dragging
	resizing
)

// Direction selects which edges a resize moves.
type Direction int

const (
	// SouthEast moves both the bottom and right edges
	SouthEast Direction = iota
	// South moves only the bottom edge
	South
	// East moves only the right edge
	East
)

// Engine maintains the non-overlapping widget arrangement for one grid.
// It is not safe for concurrent use; the caller owns serialization (the TUI
// event loop is single-threaded, matching how the engine is driven).
type Engine struct {
	rows int
	cols int

	placed map[int64]Position

	state     interaction
	activeID  int64
	activeDir Direction
	origin    Position // position to revert to on an invalid drop
}

// New creates an engine for a rows x cols grid. Non-positive dimensions fall
// back to the 6x8 default.
func New(rows, cols int) *Engine {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	return &Engine{
		rows:   rows,
		cols:   cols,
		placed: make(map[int64]Position),
	}
}

// Rows returns the grid height in cells.
func (e *Engine) Rows() int { return e.rows }

// Cols returns the grid width in cells.
func (e *Engine) Cols() int { return e.cols }

// PositionOf returns the placed position for a widget id.
func (e *Engine) PositionOf(id int64) (Position, bool) {
	p, ok := e.placed[id]
	return p, ok
}

// Positions returns a copy of the current id -> position assignment.
func (e *Engine) Positions() map[int64]Position {
	out := make(map[int64]Position, len(e.placed))
	for id, p := range e.placed {
		out[id] = p
	}
	return out
}

// IsAvailable reports whether candidate fits the grid without overlapping
// any placed widget other than excluding. Pass excluding = 0 to check
// against every widget (ids are client-generated and always positive).
func (e *Engine) IsAvailable(candidate Position, excluding int64) bool {
	if !candidate.inBounds(e.rows, e.cols) {
		return false
	}
	for id, p := range e.placed {
		if id == excluding {
			continue
		}
		if candidate.Overlaps(p) {
			return false
		}
	}
	return true
}

// FindNextAvailable scans candidate anchors in row-major order (smallest row
// first, then smallest column) and returns the first free rectangle of the
// given footprint. The scan is deterministic: the same occupied set always
// yields the same anchor. Returns ErrNoSpace when the scan exhausts the grid.
func (e *Engine) FindNextAvailable(width, height int) (Position, error) {
	if width <= 0 || height <= 0 || width > e.cols || height > e.rows {
		return Position{}, ErrNoSpace
	}

	for row := 1; row <= e.rows-height+1; row++ {
		for col := 1; col <= e.cols-width+1; col++ {
			candidate := Position{
				StartRow: row,
				StartCol: col,
				EndRow:   row + height,
				EndCol:   col + width,
			}
			if e.IsAvailable(candidate, 0) {
				return candidate, nil
			}
		}
	}
	return Position{}, ErrNoSpace
}

// Add places a new widget at the first available anchor for the footprint.
func (e *Engine) Add(id int64, width, height int) (Position, error) {
	if _, ok := e.placed[id]; ok {
		return Position{}, ErrDuplicateWidget
	}
	pos, err := e.FindNextAvailable(width, height)
	if err != nil {
		return Position{}, err
	}
	e.placed[id] = pos
	return pos, nil
}

// Place puts a widget at an explicit position, validating bounds and overlap.
func (e *Engine) Place(id int64, pos Position) error {
	if _, ok := e.placed[id]; ok {
		return ErrDuplicateWidget
	}
	if !pos.inBounds(e.rows, e.cols) {
		return ErrOutOfBounds
	}
	if !e.IsAvailable(pos, 0) {
		return ErrOccupied
	}
	e.placed[id] = pos
	return nil
}

// Remove drops a widget from the grid. Removing the active interaction's
// widget cancels the interaction.
func (e *Engine) Remove(id int64) {
	if e.state != idle && e.activeID == id {
		e.state = idle
	}
	delete(e.placed, id)
}

// Reset clears all placements and any in-progress interaction.
func (e *Engine) Reset() {
	e.placed = make(map[int64]Position)
	e.state = idle
}

// StartDrag begins moving a widget. Fails if another drag or resize is in
// progress anywhere on the grid.
func (e *Engine) StartDrag(id int64) error {
	if e.state != idle {
		return ErrInteractionActive
	}
	origin, ok := e.placed[id]
	if !ok {
		return ErrUnknownWidget
	}
	e.state = dragging
	e.activeID = id
	e.origin = origin
	return nil
}

// FinalizeDrag drops the dragged widget with its top-left anchored at
// pointer, keeping its footprint and clamping to grid bounds. If the
// resulting rectangle conflicts with another widget the drag reverts to the
// pre-drag position and reverted is true. The committed position is
// returned; placement failures recover locally and are never surfaced as
// errors.
func (e *Engine) FinalizeDrag(pointer Cell) (pos Position, reverted bool, err error) {
	if e.state != dragging {
		return Position{}, false, ErrNoInteraction
	}
	e.state = idle

	width := e.origin.Width()
	height := e.origin.Height()

	startRow := clamp(pointer.Row, 1, e.rows-height+1)
	startCol := clamp(pointer.Col, 1, e.cols-width+1)
	candidate := Position{
		StartRow: startRow,
		StartCol: startCol,
		EndRow:   startRow + height,
		EndCol:   startCol + width,
	}

	if e.IsAvailable(candidate, e.activeID) {
		e.placed[e.activeID] = candidate
		return candidate, false, nil
	}

	slog.Debug("drag rejected, reverting", "widget", e.activeID, "candidate", candidate.String())
	e.placed[e.activeID] = e.origin
	return e.origin, true, nil
}

// StartResize begins resizing a widget along the given direction.
func (e *Engine) StartResize(id int64, dir Direction) error {
	if e.state != idle {
		return ErrInteractionActive
	}
	origin, ok := e.placed[id]
	if !ok {
		return ErrUnknownWidget
	}
	e.state = resizing
	e.activeID = id
	e.activeDir = dir
	e.origin = origin
	return nil
}

// FinalizeResize grows or shrinks the edges implied by the resize direction
// toward pointer, clamped to grid bounds and to a minimum 1x1 footprint. An
// unavailable result discards the resize, keeps the original rectangle, and
// reports reverted true.
func (e *Engine) FinalizeResize(pointer Cell) (pos Position, reverted bool, err error) {
	if e.state != resizing {
		return Position{}, false, ErrNoInteraction
	}
	e.state = idle

	candidate := e.origin
	if e.activeDir == SouthEast || e.activeDir == South {
		candidate.EndRow = clamp(pointer.Row+1, e.origin.StartRow+1, e.rows+1)
	}
	if e.activeDir == SouthEast || e.activeDir == East {
		candidate.EndCol = clamp(pointer.Col+1, e.origin.StartCol+1, e.cols+1)
	}

	if e.IsAvailable(candidate, e.activeID) {
		e.placed[e.activeID] = candidate
		return candidate, false, nil
	}

	slog.Debug("resize rejected, reverting", "widget", e.activeID, "candidate", candidate.String())
	e.placed[e.activeID] = e.origin
	return e.origin, true, nil
}

// CancelInteraction abandons any in-progress drag or resize, restoring the
// pre-interaction position.
func (e *Engine) CancelInteraction() {
	if e.state == idle {
		return
	}
	e.placed[e.activeID] = e.origin
	e.state = idle
}

// ActiveInteraction returns the widget currently being dragged or resized.
func (e *Engine) ActiveInteraction() (id int64, active bool) {
	if e.state == idle {
		return 0, false
	}
	return e.activeID, true
}

// Dragging reports whether a drag is in progress.
func (e *Engine) Dragging() bool { return e.state == dragging }

// Resizing reports whether a resize is in progress.
func (e *Engine) Resizing() bool { return e.state == resizing }
