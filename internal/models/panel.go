package models

// Panel is a named region of the dashboard containing an ordered list of widgets.
// Panels are replaced wholesale on every save; they are never updated in place.
type Panel struct {
	Key     string // Stable slug, unique, foreign key target for widgets
	Title   string // Display name shown in the panel header
	Widgets []*Widget
}

// Layout is the complete panel_key -> panel mapping exchanged between the
// client and the store. A save is all-or-nothing across the whole layout.
type Layout map[string]*Panel
