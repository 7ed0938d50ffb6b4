package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/store"
)

// noteColumns must match the scan order in scanNote.
const noteColumns = `user_id, shortcut_id, text, created_at, updated_at`

func scanNote(scanner interface{ Scan(dest ...any) error }) (*domain.Note, error) {
	var n domain.Note
	var createdAt, updatedAt string

	err := scanner.Scan(
		&n.UserID,
		&n.ShortcutID,
		&n.Text,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	n.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	n.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// GetNote returns the user's note on a shortcut.
func (s *Store) GetNote(ctx context.Context, userID, shortcutID string) (*domain.Note, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE user_id = ? AND shortcut_id = ?`,
		userID, shortcutID)

	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// SaveNote upserts the note. CreatedAt is preserved on conflict.
func (s *Store) SaveNote(ctx context.Context, note *domain.Note) error {
	ts := formatTime(now())
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (user_id, shortcut_id, text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, shortcut_id)
		DO UPDATE SET text = excluded.text, updated_at = excluded.updated_at`,
		note.UserID, note.ShortcutID, note.Text, ts, ts,
	)
	if err != nil {
		return fmt.Errorf("upsert note: %w", err)
	}

	saved, err := s.GetNote(ctx, note.UserID, note.ShortcutID)
	if err != nil {
		return err
	}
	note.CreatedAt = saved.CreatedAt
	note.UpdatedAt = saved.UpdatedAt
	return nil
}

// DeleteNote removes the note if present. Idempotent.
func (s *Store) DeleteNote(ctx context.Context, userID, shortcutID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM notes WHERE user_id = ? AND shortcut_id = ?`,
		userID, shortcutID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
