package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"notesvc/internal/models"
	"notesvc/internal/server/storage"
)

const noteColumns = `
	SELECT n.id, n.title, n.content, u.username, n.created_at, n.updated_at
	FROM notes n
	JOIN users u ON u.id = n.user_id
`

// CreateNote stores a new note for owner and returns it with its assigned id.
// The id comes from the AUTOINCREMENT primary key, so ids of deleted notes
// are never reused.
func (s *Storage) CreateNote(ctx context.Context, title, content, owner string) (*models.Note, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var userID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM users WHERE username = ?`, owner).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve owner: %w", err)
	}

	now := time.Now()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO notes (title, content, created_at, updated_at, user_id)
		VALUES (?, ?, ?, ?, ?)
	`, title, content, now, now, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted note id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.Note{
		ID:        id,
		Title:     title,
		Content:   content,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ListNotes returns all notes owned by owner in insertion order.
func (s *Storage) ListNotes(ctx context.Context, owner string) ([]*models.Note, error) {
	rows, err := s.db.QueryContext(ctx, noteColumns+`WHERE u.username = ? ORDER BY n.id`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*models.Note, 0)
	for rows.Next() {
		note := &models.Note{}
		if err := rows.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.Owner,
			&note.CreatedAt,
			&note.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// GetNote retrieves a single note by id.
func (s *Storage) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	note := &models.Note{}

	err := s.db.QueryRowContext(ctx, noteColumns+`WHERE n.id = ?`, id).Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.Owner,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// UpdateNote replaces title and content of an owned note.
// Existence and ownership are checked inside one transaction so the
// update is atomic with respect to concurrent deletes.
func (s *Storage) UpdateNote(ctx context.Context, id int64, title, content, requester string) (*models.Note, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	note, err := s.lockNote(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if note.Owner != requester {
		return nil, storage.ErrNotOwner
	}

	now := time.Now()
	if _, err := tx.ExecContext(ctx, `
		UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?
	`, title, content, now, id); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	note.Title = title
	note.Content = content
	note.UpdatedAt = now

	return note, nil
}

// DeleteNote removes an owned note.
func (s *Storage) DeleteNote(ctx context.Context, id int64, requester string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	note, err := s.lockNote(ctx, tx, id)
	if err != nil {
		return err
	}

	if note.Owner != requester {
		return storage.ErrNotOwner
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// lockNote reads a note inside tx, mapping a missing row to ErrNoteNotFound.
func (s *Storage) lockNote(ctx context.Context, tx *sql.Tx, id int64) (*models.Note, error) {
	note := &models.Note{}

	err := tx.QueryRowContext(ctx, noteColumns+`WHERE n.id = ?`, id).Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.Owner,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}
