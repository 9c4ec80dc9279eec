// Package api defines the JSON wire shapes shared by the HTTP server and the
// terminal client.
package api

import "dashgrid/internal/models"

// Widget is the wire form of a single widget. ID is the client-generated
// identifier, never the storage row id.
type Widget struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Color   string `json:"color"`
	Large   bool   `json:"large"`
	Small   bool   `json:"small"`
	// Area is the client-side grid rectangle ("r1 / c1 / r2 / c2").
	// The store does not persist it; it only round-trips through the
	// grid engine's serialized layout.
	Area string `json:"area,omitempty"`
}

// Panel is the wire form of one panel entry.
type Panel struct {
	Title   string   `json:"title"`
	Widgets []Widget `json:"widgets"`
}

// Layout is the full panel_key -> panel mapping.
type Layout map[string]Panel

// PanelsResponse wraps GET /api/panels.
type PanelsResponse struct {
	Panels Layout `json:"panels"`
}

// SavePanelsRequest is the body of POST /api/panels.
type SavePanelsRequest struct {
	Panels Layout `json:"panels"`
}

// SaveResponse acknowledges a committed save.
type SaveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Note is the wire form of a sticky note.
type Note struct {
	ID    int64  `json:"id"`
	Note  string `json:"note"`
	Color string `json:"color"`
	User  string `json:"user"`
	Time  string `json:"time,omitempty"`
}

// FromModel translates a stored layout into the wire shape, dropping the
// storage row ids.
func FromModel(layout models.Layout) Layout {
	out := make(Layout, len(layout))
	for key, panel := range layout {
		out[key] = FromPanel(panel)
	}
	return out
}

// FromPanel translates a single stored panel into the wire shape.
func FromPanel(panel *models.Panel) Panel {
	widgets := make([]Widget, len(panel.Widgets))
	for i, w := range panel.Widgets {
		widgets[i] = Widget{
			ID:      w.WidgetID,
			Title:   w.Title,
			Content: w.Content,
			Color:   w.Color,
			Large:   w.Large,
			Small:   w.Small,
		}
	}
	return Panel{Title: panel.Title, Widgets: widgets}
}

// ToModel translates a wire layout into domain form for the store. Widget
// order is taken from slice position.
func ToModel(layout Layout) models.Layout {
	out := make(models.Layout, len(layout))
	for key, panel := range layout {
		p := &models.Panel{
			Key:     key,
			Title:   panel.Title,
			Widgets: make([]*models.Widget, len(panel.Widgets)),
		}
		for i, w := range panel.Widgets {
			color := w.Color
			if color == "" {
				color = models.DefaultWidgetColor
			}
			p.Widgets[i] = &models.Widget{
				WidgetID: w.ID,
				PanelKey: key,
				Title:    w.Title,
				Content:  w.Content,
				Color:    color,
				Order:    i,
				Large:    w.Large,
				Small:    w.Small,
			}
		}
		out[key] = p
	}
	return out
}
