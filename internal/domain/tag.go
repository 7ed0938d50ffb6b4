package domain

import "time"

// Tag is a global label for shortcuts. Tags are shared across all
// users with no ownership model. Any user may create or delete one.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ShortcutTag is the per-user association between a shortcut and a tag.
// Unique per (user, shortcut, tag) triple; a shortcut may carry multiple
// tags per user.
type ShortcutTag struct {
	UserID     string    `json:"user_id"`
	ShortcutID string    `json:"shortcut_id"`
	TagID      string    `json:"tag_id"`
	CreatedAt  time.Time `json:"created_at"`
}
