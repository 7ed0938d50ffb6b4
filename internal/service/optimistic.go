package service

import (
	"maps"
	"sync"

	"github.com/keydeckapp/keydeck-server/internal/errors"
)

// optimisticSet is a cached membership set updated optimistically: the
// mutation is applied to the cache first, the store call runs, and the
// cache is restored from a snapshot if the store call fails. While a
// store call is in flight the whole set is pending and further updates
// are rejected with ErrBusy.
type optimisticSet[K comparable] struct {
	mu      sync.Mutex
	pending bool
	loaded  bool
	items   map[K]bool
}

// load installs the authoritative contents, replacing the cache.
func (s *optimisticSet[K]) load(items map[K]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.loaded = true
}

// isLoaded reports whether load has run.
func (s *optimisticSet[K]) isLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// contains reports cached membership.
func (s *optimisticSet[K]) contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[key]
}

// snapshot returns a copy of the cached set.
func (s *optimisticSet[K]) snapshot() map[K]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.items)
}

// update applies mutate to the cache, then runs commit. If commit fails
// the cache is rolled back to its pre-mutation state and the error is
// returned. A second update arriving while commit is in flight fails
// immediately with ErrBusy.
func (s *optimisticSet[K]) update(mutate func(map[K]bool), commit func() error) error {
	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return errors.Busy("another update is in progress")
	}
	s.pending = true
	before := maps.Clone(s.items)
	if s.items == nil {
		s.items = make(map[K]bool)
	}
	mutate(s.items)
	s.mu.Unlock()

	err := commit()

	s.mu.Lock()
	if err != nil {
		s.items = before
	}
	s.pending = false
	s.mu.Unlock()
	return err
}
