// Package domain contains the core entity types for the KeyDeck server.
package domain

// Shortcut is a single keyboard/command reference entry tied to one
// platform and one category. Catalog entries are immutable: they are
// created at seed time and never mutated by users.
type Shortcut struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Keys        string `json:"shortcut"` // Key-combination string, e.g. "Ctrl+Shift+N"
	Description string `json:"description"`
	Category    string `json:"category"`
	Platform    string `json:"platform"`
}

// Platform is a top-level grouping of shortcuts (an IDE or OS).
type Platform struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

// Category is a cross-platform classification of shortcuts.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}
