// Package store defines the storage contract for shortcuts, favorites,
// notes, tags, and quiz history, plus the in-memory and Badger-backed
// implementations. The SQLite implementation lives in store/sqlite.
package store

import (
	"context"

	"github.com/keydeckapp/keydeck-server/internal/domain"
)

// Store is the persistence interface shared by all backends.
//
// Semantics every implementation must honor:
//   - AddFavorite, AddShortcutTag, RemoveFavorite, RemoveShortcutTag and
//     DeleteNote are idempotent.
//   - SaveNote is an upsert: one note slot per (user, shortcut).
//   - SearchShortcuts matches case-insensitively as a substring of
//     title, description, or keys.
//   - ListQuizHistory returns sessions most recent first.
//   - List results follow catalog insertion order unless stated otherwise.
type Store interface {
	// Shortcuts (catalog).
	ListShortcuts(ctx context.Context) ([]domain.Shortcut, error)
	ListShortcutsByPlatform(ctx context.Context, platform string) ([]domain.Shortcut, error)
	ListShortcutsByCategory(ctx context.Context, category string) ([]domain.Shortcut, error)
	SearchShortcuts(ctx context.Context, term string) ([]domain.Shortcut, error)
	GetShortcut(ctx context.Context, id string) (*domain.Shortcut, error)
	CreateShortcut(ctx context.Context, s *domain.Shortcut) error
	CountShortcutsByPlatform(ctx context.Context, platform string) (int, error)

	// Favorites.
	ListFavorites(ctx context.Context, userID string) ([]string, error)
	AddFavorite(ctx context.Context, userID, shortcutID string) error
	RemoveFavorite(ctx context.Context, userID, shortcutID string) error
	IsFavorite(ctx context.Context, userID, shortcutID string) (bool, error)

	// Notes.
	GetNote(ctx context.Context, userID, shortcutID string) (*domain.Note, error)
	SaveNote(ctx context.Context, note *domain.Note) error
	DeleteNote(ctx context.Context, userID, shortcutID string) error

	// Tags.
	ListTags(ctx context.Context) ([]domain.Tag, error)
	GetTag(ctx context.Context, id string) (*domain.Tag, error)
	CreateTag(ctx context.Context, tag *domain.Tag) error
	DeleteTag(ctx context.Context, id string) error

	// Shortcut-tag associations.
	ListShortcutTags(ctx context.Context, userID, shortcutID string) ([]domain.Tag, error)
	AddShortcutTag(ctx context.Context, assoc *domain.ShortcutTag) error
	RemoveShortcutTag(ctx context.Context, userID, shortcutID, tagID string) error

	// Quiz history.
	CreateQuizSession(ctx context.Context, session *domain.QuizSession) error
	ListQuizHistory(ctx context.Context, userID string) ([]domain.QuizSession, error)

	Close() error
}
