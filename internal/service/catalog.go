// Package service contains the application services sitting between the
// HTTP handlers and the store.
package service

import (
	"context"

	"github.com/keydeckapp/keydeck-server/internal/catalog"
	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/errors"
	"github.com/keydeckapp/keydeck-server/internal/filter"
	"github.com/keydeckapp/keydeck-server/internal/logger"
	"github.com/keydeckapp/keydeck-server/internal/store"
)

// CatalogService serves the shortcut catalog and runs the filter engine.
type CatalogService struct {
	store  store.Store
	logger *logger.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(st store.Store, log *logger.Logger) *CatalogService {
	return &CatalogService{store: st, logger: log}
}

// ListShortcuts returns the full catalog in insertion order.
func (s *CatalogService) ListShortcuts(ctx context.Context) ([]domain.Shortcut, error) {
	return s.store.ListShortcuts(ctx)
}

// ListByPlatform returns the catalog entries for one platform. Unknown
// platforms yield an empty list, not an error.
func (s *CatalogService) ListByPlatform(ctx context.Context, platform string) ([]domain.Shortcut, error) {
	return s.store.ListShortcutsByPlatform(ctx, platform)
}

// ListByCategory returns the catalog entries for one category.
func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]domain.Shortcut, error) {
	return s.store.ListShortcutsByCategory(ctx, category)
}

// GetShortcut returns a single catalog entry.
func (s *CatalogService) GetShortcut(ctx context.Context, id string) (*domain.Shortcut, error) {
	return s.store.GetShortcut(ctx, id)
}

// SearchShortcuts does case-insensitive substring matching over titles,
// descriptions, and key strings.
func (s *CatalogService) SearchShortcuts(ctx context.Context, term string) ([]domain.Shortcut, error) {
	return s.store.SearchShortcuts(ctx, term)
}

// Platforms returns platform display metadata.
func (s *CatalogService) Platforms() []domain.Platform {
	return catalog.Platforms()
}

// Categories returns category display metadata.
func (s *CatalogService) Categories() []domain.Category {
	return catalog.Categories()
}

// FilterRequest is the full filter state for a server-side filter run.
type FilterRequest struct {
	Platform      string
	Categories    []string // nil means all categories
	SearchTerm    string
	FavoritesOnly bool
	UserID        string // required when FavoritesOnly is set
}

// Filter runs the filter engine over the catalog. All conditions are
// conjunctive; result order follows catalog order.
func (s *CatalogService) Filter(ctx context.Context, req FilterRequest) ([]domain.Shortcut, error) {
	if req.FavoritesOnly && req.UserID == "" {
		return nil, errors.Validation("user_id is required when favorites_only is set")
	}

	shortcuts, err := s.store.ListShortcuts(ctx)
	if err != nil {
		return nil, err
	}

	state := filter.State{
		Platform:      req.Platform,
		Categories:    filter.NewCategorySet(req.Categories),
		SearchTerm:    req.SearchTerm,
		FavoritesOnly: req.FavoritesOnly,
	}

	if req.FavoritesOnly {
		ids, err := s.store.ListFavorites(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		state.FavoriteIDs = filter.NewIDSet(ids)
	}

	return filter.Apply(shortcuts, state), nil
}
