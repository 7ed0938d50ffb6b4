package service

import (
	"context"

	"github.com/keydeckapp/keydeck-server/internal/logger"
	"github.com/keydeckapp/keydeck-server/internal/search"
	"github.com/keydeckapp/keydeck-server/internal/store"
)

// SearchService answers full-text queries against the Bleve index.
// The plain substring search stays on the store; this service adds
// relevance ranking, stemming, and fuzzy matching on top.
type SearchService struct {
	index  *search.Index
	store  store.Store
	logger *logger.Logger
}

// NewSearchService creates a search service over an existing index.
func NewSearchService(index *search.Index, st store.Store, log *logger.Logger) *SearchService {
	return &SearchService{index: index, store: st, logger: log}
}

// Bootstrap indexes the full catalog from the store. Called once at
// startup after seeding.
func (s *SearchService) Bootstrap(ctx context.Context) error {
	shortcuts, err := s.store.ListShortcuts(ctx)
	if err != nil {
		return err
	}
	return s.index.IndexShortcuts(shortcuts)
}

// Search runs a ranked full-text query.
func (s *SearchService) Search(ctx context.Context, params search.Params) (*search.Result, error) {
	return s.index.Search(ctx, params)
}

// Reindex rebuilds the index from the store's current catalog.
func (s *SearchService) Reindex(ctx context.Context) error {
	shortcuts, err := s.store.ListShortcuts(ctx)
	if err != nil {
		return err
	}
	return s.index.Rebuild(shortcuts)
}
