package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/keydeckapp/keydeck-server/internal/domain"
)

// pairKey builds the composite map key for per-(user, shortcut) records.
func pairKey(userID, shortcutID string) string {
	return userID + "\x00" + shortcutID
}

// MemoryStore is the in-memory Store implementation. All data is lost on
// restart. Safe for concurrent use.
type MemoryStore struct {
	mu sync.RWMutex

	shortcuts   []domain.Shortcut
	shortcutIdx map[string]int

	favorites map[string][]domain.Favorite // userID -> insertion order

	notes map[string]*domain.Note // pairKey

	tagOrder []string
	tags     map[string]domain.Tag

	shortcutTags map[string][]domain.ShortcutTag // pairKey, insertion order

	quizHistory map[string][]domain.QuizSession // userID -> append order
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		shortcutIdx:  make(map[string]int),
		favorites:    make(map[string][]domain.Favorite),
		notes:        make(map[string]*domain.Note),
		tags:         make(map[string]domain.Tag),
		shortcutTags: make(map[string][]domain.ShortcutTag),
		quizHistory:  make(map[string][]domain.QuizSession),
	}
}

var _ Store = (*MemoryStore)(nil)

// ListShortcuts returns all shortcuts in insertion order.
func (m *MemoryStore) ListShortcuts(ctx context.Context) ([]domain.Shortcut, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Shortcut, len(m.shortcuts))
	copy(out, m.shortcuts)
	return out, nil
}

// ListShortcutsByPlatform returns shortcuts for one platform.
func (m *MemoryStore) ListShortcutsByPlatform(ctx context.Context, platform string) ([]domain.Shortcut, error) {
	return m.filterShortcuts(ctx, func(s domain.Shortcut) bool {
		return s.Platform == platform
	})
}

// ListShortcutsByCategory returns shortcuts in one category.
func (m *MemoryStore) ListShortcutsByCategory(ctx context.Context, category string) ([]domain.Shortcut, error) {
	return m.filterShortcuts(ctx, func(s domain.Shortcut) bool {
		return s.Category == category
	})
}

// SearchShortcuts returns shortcuts whose title, description, or keys
// contain term, case-insensitively.
func (m *MemoryStore) SearchShortcuts(ctx context.Context, term string) ([]domain.Shortcut, error) {
	t := strings.ToLower(term)
	return m.filterShortcuts(ctx, func(s domain.Shortcut) bool {
		return strings.Contains(strings.ToLower(s.Title), t) ||
			strings.Contains(strings.ToLower(s.Description), t) ||
			strings.Contains(strings.ToLower(s.Keys), t)
	})
}

func (m *MemoryStore) filterShortcuts(ctx context.Context, keep func(domain.Shortcut) bool) ([]domain.Shortcut, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Shortcut, 0)
	for _, s := range m.shortcuts {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

// GetShortcut returns a shortcut by ID.
func (m *MemoryStore) GetShortcut(ctx context.Context, id string) (*domain.Shortcut, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.shortcutIdx[id]
	if !ok {
		return nil, ErrNotFound
	}
	s := m.shortcuts[i]
	return &s, nil
}

// CreateShortcut appends a shortcut to the catalog.
func (m *MemoryStore) CreateShortcut(ctx context.Context, s *domain.Shortcut) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.shortcutIdx[s.ID]; exists {
		return ErrAlreadyExists
	}
	m.shortcutIdx[s.ID] = len(m.shortcuts)
	m.shortcuts = append(m.shortcuts, *s)
	return nil
}

// CountShortcutsByPlatform returns the number of shortcuts for a platform.
func (m *MemoryStore) CountShortcutsByPlatform(ctx context.Context, platform string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, s := range m.shortcuts {
		if s.Platform == platform {
			n++
		}
	}
	return n, nil
}

// ListFavorites returns the user's favorited shortcut IDs in the order
// they were added.
func (m *MemoryStore) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	favs := m.favorites[userID]
	out := make([]string, len(favs))
	for i, f := range favs {
		out[i] = f.ShortcutID
	}
	return out, nil
}

// AddFavorite records a favorite. Adding an existing favorite is a no-op.
func (m *MemoryStore) AddFavorite(ctx context.Context, userID, shortcutID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, f := range m.favorites[userID] {
		if f.ShortcutID == shortcutID {
			return nil
		}
	}
	m.favorites[userID] = append(m.favorites[userID], domain.Favorite{
		UserID:     userID,
		ShortcutID: shortcutID,
		CreatedAt:  now(),
	})
	return nil
}

// RemoveFavorite deletes a favorite. Removing a missing favorite is a no-op.
func (m *MemoryStore) RemoveFavorite(ctx context.Context, userID, shortcutID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	favs := m.favorites[userID]
	for i, f := range favs {
		if f.ShortcutID == shortcutID {
			m.favorites[userID] = append(favs[:i:i], favs[i+1:]...)
			return nil
		}
	}
	return nil
}

// IsFavorite reports whether the user favorited the shortcut.
func (m *MemoryStore) IsFavorite(ctx context.Context, userID, shortcutID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, f := range m.favorites[userID] {
		if f.ShortcutID == shortcutID {
			return true, nil
		}
	}
	return false, nil
}

// GetNote returns the user's note on a shortcut.
func (m *MemoryStore) GetNote(ctx context.Context, userID, shortcutID string) (*domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, ok := m.notes[pairKey(userID, shortcutID)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *n
	return &cp, nil
}

// SaveNote upserts the note. An existing note keeps its CreatedAt and
// gets a fresh UpdatedAt.
func (m *MemoryStore) SaveNote(ctx context.Context, note *domain.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	key := pairKey(note.UserID, note.ShortcutID)
	cp := *note
	if existing, ok := m.notes[key]; ok {
		cp.CreatedAt = existing.CreatedAt
	} else if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now()
	}
	cp.UpdatedAt = now()
	m.notes[key] = &cp

	note.CreatedAt = cp.CreatedAt
	note.UpdatedAt = cp.UpdatedAt
	return nil
}

// DeleteNote removes the note if present.
func (m *MemoryStore) DeleteNote(ctx context.Context, userID, shortcutID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.notes, pairKey(userID, shortcutID))
	return nil
}

// ListTags returns all tags in creation order.
func (m *MemoryStore) ListTags(ctx context.Context) ([]domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Tag, 0, len(m.tagOrder))
	for _, id := range m.tagOrder {
		out = append(out, m.tags[id])
	}
	return out, nil
}

// GetTag returns a tag by ID.
func (m *MemoryStore) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tags[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

// CreateTag adds a tag. Tag names are unique case-insensitively.
func (m *MemoryStore) CreateTag(ctx context.Context, tag *domain.Tag) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.tags[tag.ID]; exists {
		return ErrAlreadyExists
	}
	for _, existing := range m.tags {
		if strings.EqualFold(existing.Name, tag.Name) {
			return ErrAlreadyExists
		}
	}

	cp := *tag
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now()
		tag.CreatedAt = cp.CreatedAt
	}
	m.tags[cp.ID] = cp
	m.tagOrder = append(m.tagOrder, cp.ID)
	return nil
}

// DeleteTag removes a tag and every association referencing it.
func (m *MemoryStore) DeleteTag(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tags[id]; !ok {
		return ErrNotFound
	}
	delete(m.tags, id)
	for i, tid := range m.tagOrder {
		if tid == id {
			m.tagOrder = append(m.tagOrder[:i:i], m.tagOrder[i+1:]...)
			break
		}
	}

	for key, assocs := range m.shortcutTags {
		kept := assocs[:0]
		for _, a := range assocs {
			if a.TagID != id {
				kept = append(kept, a)
			}
		}
		if len(kept) == 0 {
			delete(m.shortcutTags, key)
		} else {
			m.shortcutTags[key] = kept
		}
	}
	return nil
}

// ListShortcutTags returns the tags a user attached to a shortcut, in
// the order they were attached.
func (m *MemoryStore) ListShortcutTags(ctx context.Context, userID, shortcutID string) ([]domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Tag, 0)
	for _, a := range m.shortcutTags[pairKey(userID, shortcutID)] {
		if t, ok := m.tags[a.TagID]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// AddShortcutTag attaches a tag to a shortcut for a user. Idempotent.
// The tag must exist.
func (m *MemoryStore) AddShortcutTag(ctx context.Context, assoc *domain.ShortcutTag) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tags[assoc.TagID]; !ok {
		return ErrNotFound
	}

	key := pairKey(assoc.UserID, assoc.ShortcutID)
	for _, a := range m.shortcutTags[key] {
		if a.TagID == assoc.TagID {
			return nil
		}
	}

	cp := *assoc
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now()
	}
	m.shortcutTags[key] = append(m.shortcutTags[key], cp)
	return nil
}

// RemoveShortcutTag detaches a tag from a shortcut for a user. Idempotent.
func (m *MemoryStore) RemoveShortcutTag(ctx context.Context, userID, shortcutID, tagID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	key := pairKey(userID, shortcutID)
	assocs := m.shortcutTags[key]
	for i, a := range assocs {
		if a.TagID == tagID {
			m.shortcutTags[key] = append(assocs[:i:i], assocs[i+1:]...)
			return nil
		}
	}
	return nil
}

// CreateQuizSession appends a completed quiz session to the history.
func (m *MemoryStore) CreateQuizSession(ctx context.Context, session *domain.QuizSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if session.Score < 0 || session.Score > session.TotalQuestions {
		return ErrInvalidInput.WithMessage("score out of range")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *session
	if cp.CompletedAt.IsZero() {
		cp.CompletedAt = now()
		session.CompletedAt = cp.CompletedAt
	}
	m.quizHistory[session.UserID] = append(m.quizHistory[session.UserID], cp)
	return nil
}

// ListQuizHistory returns the user's sessions, most recent first.
func (m *MemoryStore) ListQuizHistory(ctx context.Context, userID string) ([]domain.QuizSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	hist := m.quizHistory[userID]
	out := make([]domain.QuizSession, len(hist))
	copy(out, hist)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	return out, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
