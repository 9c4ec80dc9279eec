package database

import (
	"context"
	"database/sql"
	"fmt"

	"dashgrid/internal/models"
)

// NoteRepo handles all note-related database operations.
type NoteRepo struct {
	db *sql.DB
}

// GetNotes retrieves every note, newest first.
func (r *NoteRepo) GetNotes(ctx context.Context) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, note, color, user, time FROM notes ORDER BY time DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	notes := []*models.Note{}
	for rows.Next() {
		n := &models.Note{}
		if err := rows.Scan(&n.ID, &n.Note, &n.Color, &n.User, &n.Time); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// GetNote retrieves a note by id.
// Returns models.ErrNoteNotFound if the id is not stored.
func (r *NoteRepo) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	n := &models.Note{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, note, color, user, time FROM notes WHERE id = ?`, id,
	).Scan(&n.ID, &n.Note, &n.Color, &n.User, &n.Time)
	if err == sql.ErrNoRows {
		return nil, models.ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying note %d: %w", id, err)
	}
	return n, nil
}

// CreateNote inserts a new note and returns it with its assigned id.
func (r *NoteRepo) CreateNote(ctx context.Context, note, color, user string) (*models.Note, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (note, color, user) VALUES (?, ?, ?)`,
		note, color, user)
	if err != nil {
		return nil, fmt.Errorf("inserting note: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetNote(ctx, id)
}

// UpdateNote replaces the content of an existing note.
// Returns models.ErrNoteNotFound if the id is not stored.
func (r *NoteRepo) UpdateNote(ctx context.Context, id int64, note, color, user string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE notes SET note = ?, color = ?, user = ? WHERE id = ?`,
		note, color, user, id)
	if err != nil {
		return fmt.Errorf("updating note %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNoteNotFound
	}
	return nil
}

// DeleteNote removes a note.
// Returns models.ErrNoteNotFound if the id is not stored.
func (r *NoteRepo) DeleteNote(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting note %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNoteNotFound
	}
	return nil
}
