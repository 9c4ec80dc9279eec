package models

import "time"

// DefaultWidgetColor is the border color applied when a widget has none.
const DefaultWidgetColor = "#00d563"

// Widget is a single content card within a panel.
//
// WidgetID is the client-generated numeric identifier exposed on the wire;
// it is deliberately distinct from the storage row id, which never leaves
// the database layer.
type Widget struct {
	RowID     int64  // Storage primary key (AUTOINCREMENT)
	WidgetID  int64  // Client-generated identifier (unix-millisecond based)
	PanelKey  string
	Title     string
	Content   string // Free text, may contain markdown/HTML
	Color     string // Hex string "#RRGGBB"
	Order     int    // 0-based render position within the panel
	Large     bool   // Center panel: render in its own full-width row
	Small     bool   // Center panel: group into a shared row with other smalls
	CreatedAt time.Time
	UpdatedAt time.Time
}
