package service

import (
	"context"
	"sync"

	"github.com/keydeckapp/keydeck-server/internal/logger"
	"github.com/keydeckapp/keydeck-server/internal/store"
)

// FavoriteService manages per-user favorite sets. Each user's set is
// cached in memory and mutated optimistically: the cache changes first,
// the store call follows, and the cache rolls back if the store call
// fails. Concurrent mutations on the same user's set are rejected with
// ErrBusy rather than queued.
type FavoriteService struct {
	store  store.Store
	logger *logger.Logger

	mu    sync.Mutex
	cache map[string]*optimisticSet[string] // keyed by user ID
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(st store.Store, log *logger.Logger) *FavoriteService {
	return &FavoriteService{
		store:  st,
		logger: log,
		cache:  make(map[string]*optimisticSet[string]),
	}
}

// set returns the cached set for a user, creating it if needed.
func (s *FavoriteService) set(userID string) *optimisticSet[string] {
	s.mu.Lock()
	defer s.mu.Unlock()
	fs, ok := s.cache[userID]
	if !ok {
		fs = &optimisticSet[string]{}
		s.cache[userID] = fs
	}
	return fs
}

// ensureLoaded fills the user's cache from the store on first access.
func (s *FavoriteService) ensureLoaded(ctx context.Context, userID string) (*optimisticSet[string], error) {
	fs := s.set(userID)
	if fs.isLoaded() {
		return fs, nil
	}
	ids, err := s.store.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make(map[string]bool, len(ids))
	for _, id := range ids {
		items[id] = true
	}
	fs.load(items)
	return fs, nil
}

// List returns the user's favorite shortcut IDs in insertion order.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]string, error) {
	if _, err := s.ensureLoaded(ctx, userID); err != nil {
		return nil, err
	}
	// Order comes from the store; the cache only answers membership.
	return s.store.ListFavorites(ctx, userID)
}

// IsFavorite reports whether the shortcut is in the user's set.
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, shortcutID string) (bool, error) {
	fs, err := s.ensureLoaded(ctx, userID)
	if err != nil {
		return false, err
	}
	return fs.contains(shortcutID), nil
}

// Add puts a shortcut into the user's favorites. Adding an existing
// favorite is a no-op. The shortcut must exist in the catalog.
func (s *FavoriteService) Add(ctx context.Context, userID, shortcutID string) error {
	if _, err := s.store.GetShortcut(ctx, shortcutID); err != nil {
		return err
	}
	fs, err := s.ensureLoaded(ctx, userID)
	if err != nil {
		return err
	}
	return fs.update(
		func(items map[string]bool) { items[shortcutID] = true },
		func() error { return s.store.AddFavorite(ctx, userID, shortcutID) },
	)
}

// Remove drops a shortcut from the user's favorites. Removing an absent
// favorite is a no-op.
func (s *FavoriteService) Remove(ctx context.Context, userID, shortcutID string) error {
	fs, err := s.ensureLoaded(ctx, userID)
	if err != nil {
		return err
	}
	return fs.update(
		func(items map[string]bool) { delete(items, shortcutID) },
		func() error { return s.store.RemoveFavorite(ctx, userID, shortcutID) },
	)
}

// Toggle flips the shortcut's favorite state and reports the new state.
// A toggle arriving while another mutation on the same set is in flight
// fails with ErrBusy; the client retries.
func (s *FavoriteService) Toggle(ctx context.Context, userID, shortcutID string) (bool, error) {
	if _, err := s.store.GetShortcut(ctx, shortcutID); err != nil {
		return false, err
	}
	fs, err := s.ensureLoaded(ctx, userID)
	if err != nil {
		return false, err
	}

	adding := !fs.contains(shortcutID)
	err = fs.update(
		func(items map[string]bool) {
			if adding {
				items[shortcutID] = true
			} else {
				delete(items, shortcutID)
			}
		},
		func() error {
			if adding {
				return s.store.AddFavorite(ctx, userID, shortcutID)
			}
			return s.store.RemoveFavorite(ctx, userID, shortcutID)
		},
	)
	if err != nil {
		s.logger.Warn("favorite toggle rolled back",
			"user_id", userID, "shortcut_id", shortcutID, "error", err)
		return !adding, err
	}
	return adding, nil
}
