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

// shortcutColumns is the ordered list of columns selected in shortcut
// queries. Must match the scan order in scanShortcut.
const shortcutColumns = `id, title, keys, description, category, platform`

// scanShortcut scans a row into a domain.Shortcut.
func scanShortcut(scanner interface{ Scan(dest ...any) error }) (*domain.Shortcut, error) {
	var sc domain.Shortcut
	err := scanner.Scan(
		&sc.ID,
		&sc.Title,
		&sc.Keys,
		&sc.Description,
		&sc.Category,
		&sc.Platform,
	)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *Store) queryShortcuts(ctx context.Context, query string, args ...any) ([]domain.Shortcut, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query shortcuts: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Shortcut, 0)
	for rows.Next() {
		sc, err := scanShortcut(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shortcut: %w", err)
		}
		out = append(out, *sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListShortcuts returns the full catalog in insertion order.
func (s *Store) ListShortcuts(ctx context.Context) ([]domain.Shortcut, error) {
	return s.queryShortcuts(ctx,
		`SELECT `+shortcutColumns+` FROM shortcuts ORDER BY position ASC`)
}

// ListShortcutsByPlatform returns shortcuts for one platform.
func (s *Store) ListShortcutsByPlatform(ctx context.Context, platform string) ([]domain.Shortcut, error) {
	return s.queryShortcuts(ctx,
		`SELECT `+shortcutColumns+` FROM shortcuts WHERE platform = ? ORDER BY position ASC`,
		platform)
}

// ListShortcutsByCategory returns shortcuts in one category.
func (s *Store) ListShortcutsByCategory(ctx context.Context, category string) ([]domain.Shortcut, error) {
	return s.queryShortcuts(ctx,
		`SELECT `+shortcutColumns+` FROM shortcuts WHERE category = ? ORDER BY position ASC`,
		category)
}

// SearchShortcuts returns shortcuts whose title, description, or keys
// contain term, case-insensitively. LIKE wildcard characters in the
// term are escaped so they match literally.
func (s *Store) SearchShortcuts(ctx context.Context, term string) ([]domain.Shortcut, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	return s.queryShortcuts(ctx, `
		SELECT `+shortcutColumns+` FROM shortcuts
		WHERE lower(title) LIKE ? ESCAPE '\'
		   OR lower(description) LIKE ? ESCAPE '\'
		   OR lower(keys) LIKE ? ESCAPE '\'
		ORDER BY position ASC`,
		pattern, pattern, pattern)
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}

// GetShortcut returns a shortcut by ID.
func (s *Store) GetShortcut(ctx context.Context, id string) (*domain.Shortcut, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+shortcutColumns+` FROM shortcuts WHERE id = ?`, id)

	sc, err := scanShortcut(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// CreateShortcut appends a shortcut to the catalog.
func (s *Store) CreateShortcut(ctx context.Context, sc *domain.Shortcut) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shortcuts (id, position, title, keys, description, category, platform)
		VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM shortcuts), ?, ?, ?, ?, ?)`,
		sc.ID, sc.Title, sc.Keys, sc.Description, sc.Category, sc.Platform,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// CountShortcutsByPlatform returns the number of shortcuts for a platform.
func (s *Store) CountShortcutsByPlatform(ctx context.Context, platform string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM shortcuts WHERE platform = ?`, platform).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count shortcuts: %w", err)
	}
	return n, nil
}
