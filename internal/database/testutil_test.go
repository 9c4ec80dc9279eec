package database

import (
	"context"
	"database/sql"
	"testing"

	"dashgrid/internal/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database and runs migrations.
// This is the unified test database setup used by all tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Clear the seeded default layout for fresh tests
	if _, err := db.Exec("DELETE FROM widgets"); err != nil {
		t.Fatalf("Failed to clear widgets: %v", err)
	}
	if _, err := db.Exec("DELETE FROM panels"); err != nil {
		t.Fatalf("Failed to clear panels: %v", err)
	}

	return db
}

// openMigrated opens an in-memory database with migrations run but the
// seeded default layout left in place
func openMigrated(t *testing.T) (*sql.DB, error) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := runMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// testLayout builds a small two-panel layout used across tests
func testLayout() models.Layout {
	return models.Layout{
		"left": {
			Key:   "left",
			Title: "My Projects",
			Widgets: []*models.Widget{
				{WidgetID: 1, Title: "Current Work", Color: "#00d563"},
				{WidgetID: 2, Title: "Side Projects", Color: "#ff6b6b"},
			},
		},
		"right": {
			Key:   "right",
			Title: "Life Stuff",
			Widgets: []*models.Widget{
				{WidgetID: 3, Title: "Calendar", Color: "#00d563", Small: true},
			},
		},
	}
}

// mustSave saves a layout or fails the test
func mustSave(t *testing.T, repo *Repository, layout models.Layout) {
	t.Helper()
	if err := repo.SavePanels(context.Background(), layout); err != nil {
		t.Fatalf("Failed to save layout: %v", err)
	}
}
