package database

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"dashgrid/internal/models"
)

// PanelRepo handles all panel/widget persistence.
//
// Writes use full-replace semantics: every save deletes the entire layout and
// reinserts it inside one transaction. There is no concurrency control above
// the database, so collapsing every mutation into delete+reinsert makes
// last-writer-wins total and leaves no way for stale widgets to linger.
type PanelRepo struct {
	db *sql.DB
}

// GetAllPanels reads the complete layout, panels ordered by key and widgets
// by their stored order. It never returns a partial layout: any failure on a
// per-panel widget query fails the whole call.
func (r *PanelRepo) GetAllPanels(ctx context.Context) (models.Layout, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT panel_key, title FROM panels ORDER BY panel_key`)
	if err != nil {
		return nil, fmt.Errorf("querying panels: %w", err)
	}
	defer rows.Close()

	layout := models.Layout{}
	for rows.Next() {
		panel := &models.Panel{}
		if err := rows.Scan(&panel.Key, &panel.Title); err != nil {
			return nil, fmt.Errorf("scanning panel row: %w", err)
		}
		layout[panel.Key] = panel
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating panel rows: %w", err)
	}

	for _, panel := range layout {
		widgets, err := r.widgetsForPanel(ctx, panel.Key)
		if err != nil {
			return nil, err
		}
		panel.Widgets = widgets
	}

	return layout, nil
}

// GetPanel reads a single panel and its widgets.
// Returns models.ErrPanelNotFound if the key is not stored.
func (r *PanelRepo) GetPanel(ctx context.Context, panelKey string) (*models.Panel, error) {
	panel := &models.Panel{}
	err := r.db.QueryRowContext(ctx,
		`SELECT panel_key, title FROM panels WHERE panel_key = ?`,
		panelKey,
	).Scan(&panel.Key, &panel.Title)
	if err == sql.ErrNoRows {
		return nil, models.ErrPanelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying panel %q: %w", panelKey, err)
	}

	widgets, err := r.widgetsForPanel(ctx, panelKey)
	if err != nil {
		return nil, err
	}
	panel.Widgets = widgets
	return panel, nil
}

// SavePanels atomically replaces the entire stored layout with the given one.
// An empty layout is legal and clears the store. On any failure the
// transaction is rolled back and the store is left unchanged.
func (r *PanelRepo) SavePanels(ctx context.Context, layout models.Layout) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	// Widgets first: the foreign key forbids orphans
	if _, err := tx.ExecContext(ctx, `DELETE FROM widgets`); err != nil {
		return fmt.Errorf("clearing widgets: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM panels`); err != nil {
		return fmt.Errorf("clearing panels: %w", err)
	}

	// Sorted keys keep insertion order stable across saves
	keys := make([]string, 0, len(layout))
	for key := range layout {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		panel := layout[key]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO panels (panel_key, title) VALUES (?, ?)`,
			key, panel.Title,
		); err != nil {
			return fmt.Errorf("inserting panel %q: %w", key, err)
		}

		for i, w := range panel.Widgets {
			color := w.Color
			if color == "" {
				color = models.DefaultWidgetColor
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO widgets
					(widget_id, panel_key, title, content, color, widget_order, is_large, is_small)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				w.WidgetID, key, w.Title, w.Content, color, i, w.Large, w.Small,
			); err != nil {
				return fmt.Errorf("inserting widget %d of panel %q: %w", w.WidgetID, key, err)
			}
		}
	}

	return tx.Commit()
}

// DeletePanel removes a panel; the foreign key cascades to its widgets.
func (r *PanelRepo) DeletePanel(ctx context.Context, panelKey string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM panels WHERE panel_key = ?`, panelKey)
	if err != nil {
		return fmt.Errorf("deleting panel %q: %w", panelKey, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrPanelNotFound
	}
	return nil
}

func (r *PanelRepo) widgetsForPanel(ctx context.Context, panelKey string) ([]*models.Widget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, widget_id, panel_key, title, content, color, widget_order,
			is_large, is_small, created_at, updated_at
		 FROM widgets WHERE panel_key = ? ORDER BY widget_order`,
		panelKey)
	if err != nil {
		return nil, fmt.Errorf("querying widgets for panel %q: %w", panelKey, err)
	}
	defer rows.Close()

	widgets := []*models.Widget{}
	for rows.Next() {
		w := &models.Widget{}
		if err := rows.Scan(
			&w.RowID, &w.WidgetID, &w.PanelKey, &w.Title, &w.Content, &w.Color,
			&w.Order, &w.Large, &w.Small, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning widget row: %w", err)
		}
		widgets = append(widgets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating widget rows: %w", err)
	}
	return widgets, nil
}
