package domain

import "time"

// Favorite marks a shortcut as favorited by a user.
// Existence is the whole record: one entry per (user, shortcut) pair,
// idempotent under re-insertion.
type Favorite struct {
	UserID     string    `json:"user_id"`
	ShortcutID string    `json:"shortcut_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Note is a personal annotation on a shortcut. At most one note exists
// per (user, shortcut) pair; saving over an existing note updates it
// in place.
type Note struct {
	UserID     string    `json:"user_id"`
	ShortcutID string    `json:"shortcut_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Touch updates the note's UpdatedAt timestamp.
func (n *Note) Touch() {
	n.UpdatedAt = time.Now()
}
