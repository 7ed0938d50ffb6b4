package search

import (
	"fmt"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/logger"
)

// Index wraps an in-memory Bleve index over the shortcut catalog.
//
// Thread safety: all public methods are safe for concurrent use. The
// mutex protects against concurrent readers during a rebuild.
type Index struct {
	index  bleve.Index
	logger *logger.Logger
	mu     sync.RWMutex
}

// NewIndex creates an empty in-memory index. Call IndexShortcuts to
// populate it from the store.
func NewIndex(log *logger.Logger) (*Index, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &Index{index: index, logger: log}, nil
}

// IndexShortcuts indexes the given shortcuts in a single batch,
// replacing any documents with matching IDs. Slice order defines the
// position field used for tiebreak sorting.
func (s *Index) IndexShortcuts(shortcuts []domain.Shortcut) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batch := s.index.NewBatch()
	for i, sc := range shortcuts {
		doc := FromShortcut(sc, i)
		if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
			return fmt.Errorf("batch index %s: %w", doc.ID, err)
		}
	}
	if err := s.index.Batch(batch); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}

	s.logger.Debug("indexed shortcuts", "count", len(shortcuts))
	return nil
}

// IndexShortcut indexes or reindexes a single shortcut.
func (s *Index) IndexShortcut(sc domain.Shortcut, position int) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc := FromShortcut(sc, position)
	return s.index.Index(doc.ID, doc.ToMap())
}

// DeleteShortcut removes a shortcut from the index.
func (s *Index) DeleteShortcut(id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Delete(id)
}

// DocumentCount returns the number of indexed shortcuts.
func (s *Index) DocumentCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}

// Rebuild drops the index and reindexes the given shortcuts. Blocks
// all searches while it runs.
func (s *Index) Rebuild(shortcuts []domain.Shortcut) error {
	s.mu.Lock()
	if err := s.index.Close(); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("close index: %w", err)
	}
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("create index: %w", err)
	}
	s.index = index
	s.mu.Unlock()

	if err := s.IndexShortcuts(shortcuts); err != nil {
		return err
	}
	s.logger.Info("rebuilt search index", "count", len(shortcuts))
	return nil
}

// Close releases index resources.
func (s *Index) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}
