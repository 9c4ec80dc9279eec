// Package grid implements the dashboard's placement engine: a deterministic,
// non-overlapping assignment of widgets to rectangular regions of a fixed
// grid, plus the move/resize interaction rules.
//
// The engine is pure coordinate math with no rendering concerns, so it can be
// driven by any frontend and tested without one.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Default grid dimensions
const (
	DefaultCols = 6
	DefaultRows = 8
)

// Position is a rectangular region of the grid in 1-based coordinates,
// inclusive start and exclusive end. The smallest legal footprint is a
// single cell: EndRow > StartRow and EndCol > StartCol always hold for a
// placed widget.
type Position struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// Cell is a single grid coordinate, used as a pointer target during
// drag and resize interactions.
type Cell struct {
	Row int
	Col int
}

// String renders the position in its wire form, e.g. "1 / 1 / 3 / 3".
func (p Position) String() string {
	return fmt.Sprintf("%d / %d / %d / %d", p.StartRow, p.StartCol, p.EndRow, p.EndCol)
}

// ParsePosition parses the "r1 / c1 / r2 / c2" wire form.
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 4 {
		return Position{}, fmt.Errorf("invalid grid position %q: want 4 parts, got %d", s, len(parts))
	}

	nums := make([]int, 4)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Position{}, fmt.Errorf("invalid grid position %q: %w", s, err)
		}
		nums[i] = n
	}

	p := Position{StartRow: nums[0], StartCol: nums[1], EndRow: nums[2], EndCol: nums[3]}
	if p.EndRow <= p.StartRow || p.EndCol <= p.StartCol {
		return Position{}, fmt.Errorf("invalid grid position %q: zero or negative extent", s)
	}
	return p, nil
}

// Width returns the number of columns the position spans.
func (p Position) Width() int { return p.EndCol - p.StartCol }

// Height returns the number of rows the position spans.
func (p Position) Height() int { return p.EndRow - p.StartRow }

// Overlaps reports whether two rectangles share any cell. Ranges are
// half-open, so touching edges do not overlap.
func (p Position) Overlaps(o Position) bool {
	return !(p.EndRow <= o.StartRow || p.StartRow >= o.EndRow ||
		p.EndCol <= o.StartCol || p.StartCol >= o.EndCol)
}

// inBounds reports whether the rectangle fits a rows x cols grid and has a
// footprint of at least one cell.
func (p Position) inBounds(rows, cols int) bool {
	return p.StartRow >= 1 && p.StartCol >= 1 &&
		p.EndRow > p.StartRow && p.EndCol > p.StartCol &&
		p.EndRow <= rows+1 && p.EndCol <= cols+1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
