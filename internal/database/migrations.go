package database

import (
	"context"
	"database/sql"

	"dashgrid/internal/models"
)

// runMigrations creates the database schema and seeds the default layout if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create panels table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS panels (
			panel_key TEXT PRIMARY KEY CHECK (panel_key <> ''),
			title TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create widgets table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS widgets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			widget_id INTEGER NOT NULL,
			panel_key TEXT NOT NULL,
			title TEXT NOT NULL CHECK (title <> ''),
			content TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '#00d563',
			widget_order INTEGER NOT NULL,
			is_large INTEGER NOT NULL DEFAULT 0,
			is_small INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (panel_key) REFERENCES panels(panel_key) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create index for efficient ordered reads
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_widgets_panel
		ON widgets(panel_key, widget_order)
	`)
	if err != nil {
		return err
	}

	// Create notes table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			note TEXT NOT NULL,
			color TEXT NOT NULL,
			user TEXT NOT NULL,
			time DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Seed the default layout if the panels table is empty
	return seedDefaultPanels(ctx, db)
}

// seedDefaultPanels inserts the starter layout if no panels exist yet
func seedDefaultPanels(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM panels").Scan(&count); err != nil {
		return err
	}

	// If panels exist, don't seed
	if count > 0 {
		return nil
	}

	repo := &PanelRepo{db: db}
	return repo.SavePanels(ctx, defaultLayout())
}

// defaultLayout is the three-panel starter arrangement shown on first run
func defaultLayout() models.Layout {
	widget := func(id int64, title string) *models.Widget {
		return &models.Widget{WidgetID: id, Title: title, Color: models.DefaultWidgetColor}
	}

	small := func(id int64, title string) *models.Widget {
		w := widget(id, title)
		w.Small = true
		return w
	}

	large := func(id int64, title string) *models.Widget {
		w := widget(id, title)
		w.Large = true
		return w
	}

	return models.Layout{
		"left": {
			Key:   "left",
			Title: "My Projects",
			Widgets: []*models.Widget{
				widget(1, "Current Work"),
				widget(2, "Side Projects"),
				widget(3, "Ideas & Notes"),
				widget(4, "Learning Goals"),
			},
		},
		"center": {
			Key:   "center",
			Title: "Today's Focus",
			Widgets: []*models.Widget{
				large(5, "Priority Tasks"),
				small(6, "Deadlines"),
				small(7, "Quick Notes"),
				widget(8, "Weekly Progress"),
			},
		},
		"right": {
			Key:   "right",
			Title: "Life Stuff",
			Widgets: []*models.Widget{
				widget(9, "Calendar"),
				widget(10, "Reminders"),
				widget(11, "Habits Tracker"),
				widget(12, "Random Thoughts"),
			},
		},
	}
}
