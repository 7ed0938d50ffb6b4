package sqlite

import (
	"context"
	"fmt"
)

// ListFavorites returns the user's favorited shortcut IDs, oldest first.
func (s *Store) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT shortcut_id FROM favorites
		WHERE user_id = ?
		ORDER BY created_at ASC, shortcut_id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AddFavorite records a favorite. Re-adding an existing favorite is a
// no-op via INSERT OR IGNORE.
func (s *Store) AddFavorite(ctx context.Context, userID, shortcutID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO favorites (user_id, shortcut_id, created_at)
		VALUES (?, ?, ?)`,
		userID, shortcutID, formatTime(now()),
	)
	if err != nil {
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// RemoveFavorite deletes a favorite. Idempotent.
func (s *Store) RemoveFavorite(ctx context.Context, userID, shortcutID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND shortcut_id = ?`,
		userID, shortcutID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

// IsFavorite reports whether the user favorited the shortcut.
func (s *Store) IsFavorite(ctx context.Context, userID, shortcutID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE user_id = ? AND shortcut_id = ?`,
		userID, shortcutID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("query favorite: %w", err)
	}
	return n > 0, nil
}
