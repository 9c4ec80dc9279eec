package grid

import (
	"fmt"
	"sort"

	"dashgrid/internal/api"
)

// Default footprint for widgets that arrive without a stored area.
const (
	DefaultWidgetWidth  = 2
	DefaultWidgetHeight = 2
)

// ApplyLayout resets the engine and places every widget in the layout.
// Widgets carrying an area string are placed exactly there; widgets without
// one are assigned the next available default-size slot. Panels are visited
// in sorted key order and widgets in list order, so assignment is
// deterministic for a given layout.
func (e *Engine) ApplyLayout(layout api.Layout) error {
	e.Reset()

	keys := make([]string, 0, len(layout))
	for key := range layout {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		for _, w := range layout[key].Widgets {
			if w.Area == "" {
				if _, err := e.Add(w.ID, DefaultWidgetWidth, DefaultWidgetHeight); err != nil {
					return fmt.Errorf("placing widget %d of panel %q: %w", w.ID, key, err)
				}
				continue
			}
			pos, err := ParsePosition(w.Area)
			if err != nil {
				return fmt.Errorf("widget %d of panel %q: %w", w.ID, key, err)
			}
			if err := e.Place(w.ID, pos); err != nil {
				return fmt.Errorf("placing widget %d of panel %q at %s: %w", w.ID, key, pos, err)
			}
		}
	}
	return nil
}

// SerializeLayout returns a copy of the layout with each tracked widget's
// grid rectangle written into its area field, ready to round-trip through
// the store's wire shape. Widget order is preserved exactly.
func (e *Engine) SerializeLayout(layout api.Layout) api.Layout {
	out := make(api.Layout, len(layout))
	for key, panel := range layout {
		widgets := make([]api.Widget, len(panel.Widgets))
		for i, w := range panel.Widgets {
			if pos, ok := e.placed[w.ID]; ok {
				w.Area = pos.String()
			}
			widgets[i] = w
		}
		out[key] = api.Panel{Title: panel.Title, Widgets: widgets}
	}
	return out
}

// GroupPanelRows arranges a panel's widgets into render rows following the
// center panel's special rule: a large widget takes its own full-width row,
// small widgets share a single common row (in list order) when the panel has
// more than one of them, and everything else stands alone.
func GroupPanelRows(widgets []api.Widget) [][]api.Widget {
	smallCount := 0
	for _, w := range widgets {
		if !w.Large && w.Small {
			smallCount++
		}
	}

	var rows [][]api.Widget
	sharedRow := -1 // index into rows of the small-widget row, once created

	for _, w := range widgets {
		switch {
		case w.Large:
			rows = append(rows, []api.Widget{w})
		case w.Small && smallCount > 1:
			if sharedRow < 0 {
				rows = append(rows, []api.Widget{w})
				sharedRow = len(rows) - 1
			} else {
				rows[sharedRow] = append(rows[sharedRow], w)
			}
		default:
			rows = append(rows, []api.Widget{w})
		}
	}
	return rows
}
