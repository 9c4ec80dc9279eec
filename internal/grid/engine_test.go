package grid

import (
	"errors"
	"testing"
)

// assertNoOverlaps fails the test if any two placed widgets overlap
func assertNoOverlaps(t *testing.T, e *Engine) {
	t.Helper()
	positions := e.Positions()
	for idA, a := range positions {
		for idB, b := range positions {
			if idA >= idB {
				continue
			}
			if a.Overlaps(b) {
				t.Errorf("Widgets %d and %d overlap: %s vs %s", idA, idB, a, b)
			}
		}
	}
}

// TestFindNextAvailableEmptyGrid tests the documented first anchor
func TestFindNextAvailableEmptyGrid(t *testing.T) {
	e := New(DefaultRows, DefaultCols)

	pos, err := e.FindNextAvailable(2, 2)
	if err != nil {
		t.Fatalf("Expected a position on an empty grid: %v", err)
	}
	if pos.String() != "1 / 1 / 3 / 3" {
		t.Errorf("Expected '1 / 1 / 3 / 3', got '%s'", pos.String())
	}
}

// TestFindNextAvailableDeterminism tests that repeated scans agree
func TestFindNextAvailableDeterminism(t *testing.T) {
	e := New(DefaultRows, DefaultCols)
	if _, err := e.Add(1, 2, 2); err != nil {
		t.Fatalf("Failed to add widget: %v", err)
	}
	if _, err := e.Add(2, 3, 1); err != nil {
		t.Fatalf("Failed to add widget: %v", err)
	}

	first, err := e.FindNextAvailable(2, 2)
	if err != nil {
		t.Fatalf("Expected a position: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := e.FindNextAvailable(2, 2)
		if err != nil {
			t.Fatalf("Scan %d failed: %v", i, err)
		}
		if again != first {
			t.Fatalf("Scan %d returned %s, first returned %s", i, again, first)
		}
	}
}

// TestFindNextAvailableRowMajor tests that the smallest row wins, then the
// smallest column
func TestFindNextAvailableRowMajor(t *testing.T) {
	e := New(4, 4)

	// Occupy the top-left 2x2 block; the next 2x2 anchor must be row 1 col 3,
	// not row 3 col 1.
	if err := e.Place(1, Position{1, 1, 3, 3}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}
	pos, err := e.FindNextAvailable(2, 2)
	if err != nil {
		t.Fatalf("Expected a position: %v", err)
	}
	if pos != (Position{1, 3, 3, 5}) {
		t.Errorf("Expected '1 / 3 / 3 / 5', got '%s'", pos)
	}
}

// TestFindNextAvailableNoSpace tests exhaustion of the scan
func TestFindNextAvailableNoSpace(t *testing.T) {
	e := New(2, 2)
	if err := e.Place(1, Position{1, 1, 3, 3}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}

	if _, err := e.FindNextAvailable(1, 1); !errors.Is(err, ErrNoSpace) {
		t.Errorf("Expected ErrNoSpace, got %v", err)
	}

	// Footprints larger than the grid can never fit
	if _, err := New(4, 4).FindNextAvailable(5, 1); !errors.Is(err, ErrNoSpace) {
		t.Errorf("Expected ErrNoSpace for oversized footprint, got %v", err)
	}
}

// TestIsAvailableExcluding tests self-exclusion during move validation
func TestIsAvailableExcluding(t *testing.T) {
	e := New(DefaultRows, DefaultCols)
	if err := e.Place(1, Position{1, 1, 3, 3}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}

	overlapping := Position{2, 2, 4, 4}
	if e.IsAvailable(overlapping, 0) {
		t.Error("Expected overlap with widget 1 to be detected")
	}
	if !e.IsAvailable(overlapping, 1) {
		t.Error("Expected overlap to be ignored when excluding widget 1")
	}

	outOfBounds := Position{8, 6, 10, 8}
	if e.IsAvailable(outOfBounds, 1) {
		t.Error("Expected out-of-bounds position to be unavailable")
	}
}

// TestPlaceRejectsConflicts tests explicit placement validation
func TestPlaceRejectsConflicts(t *testing.T) {
	e := New(DefaultRows, DefaultCols)
	if err := e.Place(1, Position{1, 1, 3, 3}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}

	if err := e.Place(2, Position{2, 2, 4, 4}); !errors.Is(err, ErrOccupied) {
		t.Errorf("Expected ErrOccupied, got %v", err)
	}
	if err := e.Place(2, Position{0, 1, 2, 3}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
	if err := e.Place(1, Position{5, 5, 6, 6}); !errors.Is(err, ErrDuplicateWidget) {
		t.Errorf("Expected ErrDuplicateWidget, got %v", err)
	}
}

// TestFinalizeDragCommits tests a valid drop
func TestFinalizeDragCommits(t *testing.T) {
	e := New(DefaultRows, DefaultCols)
	if err := e.Place(1, Position{1, 1, 3, 3}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}

	if err := e.StartDrag(1); err != nil {
		t.Fatalf("Failed to start drag: %v", err)
	}
	pos, reverted, err := e.FinalizeDrag(Cell{Row: 4, Col: 3})
	if err != nil {
		t.Fatalf("Failed to finalize drag: %v", err)
	}
	if reverted {
		t.Error("Expected a clean commit, got a revert")
	}
	if pos != (Position{4, 3, 6, 5}) {
		t.Errorf("Expected '4 / 3 / 6 / 5', got '%s'", pos)
	}
	if got, _ := e.PositionOf(1); got != pos {
		t.Errorf("Committed position mismatch: %s", got)
	}
	assertNoOverlaps(t, e)
}

// TestFinalizeDragRevertsOnConflict tests the revert-on-invalid-drop rule
func TestFinalizeDragRevertsOnConflict(t *testing.T) {
	e := New(DefaultRows, DefaultCols)
	original := Position{1, 1, 3, 3}
	if err := e.Place(1, original); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}
	if err := e.Place(2, Position{4, 4, 6, 6}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}

	if err := e.StartDrag(1); err != nil {
		t.Fatalf("Failed to start drag: %v", err)
	}
	pos, reverted, err := e.FinalizeDrag(Cell{Row: 4, Col: 4})
	if err != nil {
		t.Fatalf("Finalize should recover locally, got error: %v", err)
	}
	if !reverted {
		t.Error("Expected the drop to be reported as reverted")
	}
	if pos != original {
		t.Errorf("Expected revert to %s, got %s", original, pos)
	}
	assertNoOverlaps(t, e)
}

// TestFinalizeDragAtOriginalAnchor tests that dropping a widget back on its
// own anchor is an ordinary commit, not a revert
func TestFinalizeDragAtOriginalAnchor(t *testing.T) {
	e := New(DefaultRows, DefaultCols)
	original := Position{1, 1, 3, 3}
	if err := e.Place(1, original); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}

	if err := e.StartDrag(1); err != nil {
		t.Fatalf("Failed to start drag: %v", err)
	}
	pos, reverted, err := e.FinalizeDrag(Cell{Row: 1, Col: 1})
	if err != nil {
		t.Fatalf("Failed to finalize drag: %v", err)
	}
	if reverted {
		t.Error("Expected drop on the original anchor to commit, not revert")
	}
	if pos != original {
		t.Errorf("Expected %s, got %s", original, pos)
	}
}

// TestFinalizeDragClampsToBounds tests anchoring near the grid edge
func TestFinalizeDragClampsToBounds(t *testing.T) {
	e := New(DefaultRows, DefaultCols)
	if err := e.Place(1, Position{1, 1, 3, 3}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}

	if err := e.StartDrag(1); err != nil {
		t.Fatalf("Failed to start drag: %v", err)
	}
	// Pointer far beyond the bottom-right corner
	pos, _, err := e.FinalizeDrag(Cell{Row: 20, Col: 20})
	if err != nil {
		t.Fatalf("Failed to finalize drag: %v", err)
	}
	want := Position{DefaultRows - 1, DefaultCols - 1, DefaultRows + 1, DefaultCols + 1}
	if pos != want {
		t.Errorf("Expected clamp to %s, got %s", want, pos)
	}
}

// TestDragOntoFullyOccupiedGridReverts tests the no-exception recovery path
func TestDragOntoFullyOccupiedGridReverts(t *testing.T) {
	e := New(4, 4)
	original := Position{1, 1, 3, 3}
	if err := e.Place(1, original); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}
	// Fill every remaining cell
	if err := e.Place(2, Position{1, 3, 3, 5}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}
	if err := e.Place(3, Position{3, 1, 5, 3}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}
	if err := e.Place(4, Position{3, 3, 5, 5}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}

	if err := e.StartDrag(1); err != nil {
		t.Fatalf("Failed to start drag: %v", err)
	}
	pos, reverted, err := e.FinalizeDrag(Cell{Row: 3, Col: 3})
	if err != nil {
		t.Fatalf("Expected local recovery, got error: %v", err)
	}
	if !reverted {
		t.Error("Expected the drop to be reported as reverted")
	}
	if pos != original {
		t.Errorf("Expected revert to %s, got %s", original, pos)
	}
	assertNoOverlaps(t, e)
}

// TestSingleActiveInteraction tests the process-wide exclusivity rule
func TestSingleActiveInteraction(t *testing.T) {
	e := New(DefaultRows, DefaultCols)
	if err := e.Place(1, Position{1, 1, 3, 3}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}
	if err := e.Place(2, Position{4, 4, 6, 6}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}

	if err := e.StartDrag(1); err != nil {
		t.Fatalf("Failed to start drag: %v", err)
	}
	if err := e.StartDrag(2); !errors.Is(err, ErrInteractionActive) {
		t.Errorf("Expected ErrInteractionActive for second drag, got %v", err)
	}
	if err := e.StartResize(2, SouthEast); !errors.Is(err, ErrInteractionActive) {
		t.Errorf("Expected ErrInteractionActive for resize during drag, got %v", err)
	}

	e.CancelInteraction()
	if _, active := e.ActiveInteraction(); active {
		t.Error("Expected no active interaction after cancel")
	}
	if err := e.StartResize(2, SouthEast); err != nil {
		t.Errorf("Expected resize to start after cancel, got %v", err)
	}
}

// TestFinalizeResizeDirections tests the se/s/e edge selection
func TestFinalizeResizeDirections(t *testing.T) {
	tests := []struct {
		name    string
		dir     Direction
		pointer Cell
		want    Position
	}{
		{"southeast grows both", SouthEast, Cell{Row: 4, Col: 4}, Position{1, 1, 5, 5}},
		{"south grows rows only", South, Cell{Row: 4, Col: 4}, Position{1, 1, 5, 3}},
		{"east grows cols only", East, Cell{Row: 4, Col: 4}, Position{1, 1, 3, 5}},
		{"shrink to single cell", SouthEast, Cell{Row: 1, Col: 1}, Position{1, 1, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(DefaultRows, DefaultCols)
			if err := e.Place(1, Position{1, 1, 3, 3}); err != nil {
				t.Fatalf("Failed to place: %v", err)
			}
			if err := e.StartResize(1, tt.dir); err != nil {
				t.Fatalf("Failed to start resize: %v", err)
			}
			pos, reverted, err := e.FinalizeResize(tt.pointer)
			if err != nil {
				t.Fatalf("Failed to finalize resize: %v", err)
			}
			if reverted {
				t.Error("Expected a clean commit, got a revert")
			}
			if pos != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, pos)
			}
		})
	}
}

// TestFinalizeResizeRevertsOnConflict tests that an invalid size is discarded
func TestFinalizeResizeRevertsOnConflict(t *testing.T) {
	e := New(DefaultRows, DefaultCols)
	original := Position{1, 1, 3, 3}
	if err := e.Place(1, original); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}
	if err := e.Place(2, Position{1, 3, 3, 5}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}

	if err := e.StartResize(1, East); err != nil {
		t.Fatalf("Failed to start resize: %v", err)
	}
	pos, reverted, err := e.FinalizeResize(Cell{Row: 1, Col: 4})
	if err != nil {
		t.Fatalf("Expected local recovery, got error: %v", err)
	}
	if !reverted {
		t.Error("Expected the resize to be reported as reverted")
	}
	if pos != original {
		t.Errorf("Expected revert to %s, got %s", original, pos)
	}
	assertNoOverlaps(t, e)
}

// TestFinalizeResizeClampsToMinimumFootprint tests that a widget can never
// shrink below one cell
func TestFinalizeResizeClampsToMinimumFootprint(t *testing.T) {
	e := New(DefaultRows, DefaultCols)
	if err := e.Place(1, Position{3, 3, 6, 6}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}

	if err := e.StartResize(1, SouthEast); err != nil {
		t.Fatalf("Failed to start resize: %v", err)
	}
	// Pointer above and left of the start cell
	pos, _, err := e.FinalizeResize(Cell{Row: 1, Col: 1})
	if err != nil {
		t.Fatalf("Failed to finalize resize: %v", err)
	}
	if pos.EndRow <= pos.StartRow || pos.EndCol <= pos.StartCol {
		t.Errorf("Footprint collapsed below 1x1: %s", pos)
	}
	if pos != (Position{3, 3, 4, 4}) {
		t.Errorf("Expected '3 / 3 / 4 / 4', got '%s'", pos)
	}
}

// TestFinalizeWithoutInteraction tests the guard on stray finalize calls
func TestFinalizeWithoutInteraction(t *testing.T) {
	e := New(DefaultRows, DefaultCols)
	if _, _, err := e.FinalizeDrag(Cell{Row: 1, Col: 1}); !errors.Is(err, ErrNoInteraction) {
		t.Errorf("Expected ErrNoInteraction, got %v", err)
	}
	if _, _, err := e.FinalizeResize(Cell{Row: 1, Col: 1}); !errors.Is(err, ErrNoInteraction) {
		t.Errorf("Expected ErrNoInteraction, got %v", err)
	}
}

// TestInteractionSequencePreservesInvariant tests the non-overlap invariant
// across a mixed sequence of adds, drags and resizes
func TestInteractionSequencePreservesInvariant(t *testing.T) {
	e := New(DefaultRows, DefaultCols)

	for id := int64(1); id <= 6; id++ {
		if _, err := e.Add(id, 2, 2); err != nil {
			t.Fatalf("Failed to add widget %d: %v", id, err)
		}
		assertNoOverlaps(t, e)
	}

	moves := []struct {
		id      int64
		pointer Cell
	}{
		{1, Cell{Row: 7, Col: 1}},
		{2, Cell{Row: 1, Col: 1}},
		{3, Cell{Row: 5, Col: 5}},
		{4, Cell{Row: 7, Col: 5}},
	}
	for _, mv := range moves {
		if err := e.StartDrag(mv.id); err != nil {
			t.Fatalf("Failed to start drag of %d: %v", mv.id, err)
		}
		if _, _, err := e.FinalizeDrag(mv.pointer); err != nil {
			t.Fatalf("Failed to finalize drag of %d: %v", mv.id, err)
		}
		assertNoOverlaps(t, e)
	}

	for _, id := range []int64{1, 5, 6} {
		if err := e.StartResize(id, SouthEast); err != nil {
			t.Fatalf("Failed to start resize of %d: %v", id, err)
		}
		if _, _, err := e.FinalizeResize(Cell{Row: 8, Col: 6}); err != nil {
			t.Fatalf("Failed to finalize resize of %d: %v", id, err)
		}
		assertNoOverlaps(t, e)
	}
}

// TestRemoveFreesSpace tests that removed widgets release their cells
func TestRemoveFreesSpace(t *testing.T) {
	e := New(2, 2)
	if err := e.Place(1, Position{1, 1, 3, 3}); err != nil {
		t.Fatalf("Failed to place: %v", err)
	}
	if _, err := e.FindNextAvailable(2, 2); !errors.Is(err, ErrNoSpace) {
		t.Fatal("Expected full grid")
	}

	e.Remove(1)
	pos, err := e.FindNextAvailable(2, 2)
	if err != nil {
		t.Fatalf("Expected space after removal: %v", err)
	}
	if pos != (Position{1, 1, 3, 3}) {
		t.Errorf("Expected '1 / 1 / 3 / 3', got '%s'", pos)
	}
}
