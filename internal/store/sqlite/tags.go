package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/store"
)

// tagColumns must match the scan order in scanTag.
const tagColumns = `id, name, color, created_at`

func scanTag(scanner interface{ Scan(dest ...any) error }) (*domain.Tag, error) {
	var t domain.Tag
	var createdAt string

	err := scanner.Scan(
		&t.ID,
		&t.Name,
		&t.Color,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTags returns all tags, oldest first.
func (s *Store) ListTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+tagColumns+` FROM tags ORDER BY created_at ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Tag, 0)
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTag returns a tag by ID.
func (s *Store) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE id = ?`, id)

	t, err := scanTag(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTag inserts a tag. Names are unique case-insensitively;
// duplicates return store.ErrAlreadyExists.
func (s *Store) CreateTag(ctx context.Context, tag *domain.Tag) error {
	if tag.CreatedAt.IsZero() {
		tag.CreatedAt = now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tags (id, name, color, created_at)
		VALUES (?, ?, ?, ?)`,
		tag.ID, tag.Name, tag.Color, formatTime(tag.CreatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// DeleteTag removes a tag and its associations for all users. Both
// deletes run in one transaction here; other backends only promise a
// best-effort sweep.
func (s *Store) DeleteTag(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM shortcut_tags WHERE tag_id = ?`, id); err != nil {
		return fmt.Errorf("delete tag associations: %w", err)
	}
	return tx.Commit()
}

// ListShortcutTags returns the tags a user attached to a shortcut,
// oldest first.
func (s *Store) ListShortcutTags(ctx context.Context, userID, shortcutID string) ([]domain.Tag, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.color, t.created_at
		FROM shortcut_tags st
		JOIN tags t ON t.id = st.tag_id
		WHERE st.user_id = ? AND st.shortcut_id = ?
		ORDER BY st.created_at ASC, t.name ASC`,
		userID, shortcutID)
	if err != nil {
		return nil, fmt.Errorf("query shortcut tags: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Tag, 0)
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shortcut tag: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AddShortcutTag attaches a tag to a shortcut for a user. Idempotent.
// The tag must exist.
func (s *Store) AddShortcutTag(ctx context.Context, assoc *domain.ShortcutTag) error {
	if _, err := s.GetTag(ctx, assoc.TagID); err != nil {
		return err
	}
	if assoc.CreatedAt.IsZero() {
		assoc.CreatedAt = now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO shortcut_tags (user_id, shortcut_id, tag_id, created_at)
		VALUES (?, ?, ?, ?)`,
		assoc.UserID, assoc.ShortcutID, assoc.TagID, formatTime(assoc.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert shortcut tag: %w", err)
	}
	return nil
}

// RemoveShortcutTag detaches a tag from a shortcut for a user. Idempotent.
func (s *Store) RemoveShortcutTag(ctx context.Context, userID, shortcutID, tagID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM shortcut_tags
		WHERE user_id = ? AND shortcut_id = ? AND tag_id = ?`,
		userID, shortcutID, tagID)
	if err != nil {
		return fmt.Errorf("delete shortcut tag: %w", err)
	}
	return nil
}
