package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/keydeckapp/keydeck-server/internal/domain"
)

// Key prefixes for the document store. Per-user records embed the user
// ID in the key so one prefix scan serves each list operation.
const (
	prefixShortcut = "shortcut:"
	prefixTag      = "tag:"
	prefixFavorite = "fav:"
	prefixNote     = "note:"
	prefixAssoc    = "stag:"
	prefixQuiz     = "quiz:"
)

// DocStore is the Badger-backed Store implementation. Shortcuts are
// keyed by a zero-padded insertion sequence so catalog order survives
// the lexicographic key iteration.
type DocStore struct {
	db     *badger.DB
	logger *slog.Logger

	shortcuts *Entity[domain.Shortcut]
	tags      *Entity[domain.Tag]

	seqMu   sync.Mutex
	nextSeq uint64
}

var _ Store = (*DocStore)(nil)

// NewDocStore opens a Badger database at path.
func NewDocStore(path string, logger *slog.Logger) (*DocStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil      // Badger's own logging is too chatty
	opts.SyncWrites = true // survive crashes without replaying favorites
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	s := &DocStore{db: db, logger: logger}
	s.shortcuts = NewEntity[domain.Shortcut](s, prefixShortcut).
		WithIndex("id", func(sc *domain.Shortcut) string { return sc.ID })
	s.tags = NewEntity[domain.Tag](s, prefixTag)

	if err := s.loadShortcutSeq(); err != nil {
		db.Close()
		return nil, err
	}

	if logger != nil {
		logger.Info("badger database opened", "path", path)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *DocStore) Close() error {
	if s.logger != nil {
		s.logger.Info("closing badger database")
	}
	return s.db.Close()
}

// loadShortcutSeq counts existing shortcut records so new inserts
// continue the sequence after a restart.
func (s *DocStore) loadShortcutSeq() error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefixShortcut)
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		var n uint64
		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			remainder := strings.TrimPrefix(string(it.Item().Key()), prefixShortcut)
			if !strings.HasPrefix(remainder, "idx:") {
				n++
			}
		}
		s.nextSeq = n
		return nil
	})
}

// ListShortcuts returns the catalog in insertion order.
func (s *DocStore) ListShortcuts(ctx context.Context) ([]domain.Shortcut, error) {
	out, err := s.shortcuts.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Shortcut{}
	}
	return out, nil
}

// ListShortcutsByPlatform returns shortcuts for one platform.
func (s *DocStore) ListShortcutsByPlatform(ctx context.Context, platform string) ([]domain.Shortcut, error) {
	return s.filterShortcuts(ctx, func(sc domain.Shortcut) bool {
		return sc.Platform == platform
	})
}

// ListShortcutsByCategory returns shortcuts in one category.
func (s *DocStore) ListShortcutsByCategory(ctx context.Context, category string) ([]domain.Shortcut, error) {
	return s.filterShortcuts(ctx, func(sc domain.Shortcut) bool {
		return sc.Category == category
	})
}

// SearchShortcuts returns shortcuts matching term as a case-insensitive
// substring of title, description, or keys.
func (s *DocStore) SearchShortcuts(ctx context.Context, term string) ([]domain.Shortcut, error) {
	t := strings.ToLower(term)
	return s.filterShortcuts(ctx, func(sc domain.Shortcut) bool {
		return strings.Contains(strings.ToLower(sc.Title), t) ||
			strings.Contains(strings.ToLower(sc.Description), t) ||
			strings.Contains(strings.ToLower(sc.Keys), t)
	})
}

func (s *DocStore) filterShortcuts(ctx context.Context, keep func(domain.Shortcut) bool) ([]domain.Shortcut, error) {
	all, err := s.shortcuts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Shortcut, 0)
	for _, sc := range all {
		if keep(sc) {
			out = append(out, sc)
		}
	}
	return out, nil
}

// GetShortcut returns a shortcut by its public ID.
func (s *DocStore) GetShortcut(ctx context.Context, id string) (*domain.Shortcut, error) {
	return s.shortcuts.GetByIndex(ctx, id)
}

// CreateShortcut appends a shortcut to the catalog.
func (s *DocStore) CreateShortcut(ctx context.Context, sc *domain.Shortcut) error {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	seq := fmt.Sprintf("%010d", s.nextSeq)
	if err := s.shortcuts.Create(ctx, seq, sc); err != nil {
		return err
	}
	s.nextSeq++
	return nil
}

// CountShortcutsByPlatform returns the number of shortcuts for a platform.
func (s *DocStore) CountShortcutsByPlatform(ctx context.Context, platform string) (int, error) {
	matched, err := s.ListShortcutsByPlatform(ctx, platform)
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

// ListFavorites returns the user's favorited shortcut IDs, oldest first.
func (s *DocStore) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	var favs []domain.Favorite
	err := s.iteratePrefix(ctx, prefixFavorite+userID+":", func(val []byte) error {
		var f domain.Favorite
		if err := json.Unmarshal(val, &f); err != nil {
			return err
		}
		favs = append(favs, f)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(favs, func(i, j int) bool {
		return favs[i].CreatedAt.Before(favs[j].CreatedAt)
	})
	out := make([]string, len(favs))
	for i, f := range favs {
		out[i] = f.ShortcutID
	}
	return out, nil
}

// AddFavorite records a favorite. Idempotent.
func (s *DocStore) AddFavorite(ctx context.Context, userID, shortcutID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := prefixFavorite + userID + ":" + shortcutID
	exists, err := s.exists([]byte(key))
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.set([]byte(key), &domain.Favorite{
		UserID:     userID,
		ShortcutID: shortcutID,
		CreatedAt:  now(),
	})
}

// RemoveFavorite deletes a favorite. Idempotent.
func (s *DocStore) RemoveFavorite(ctx context.Context, userID, shortcutID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.delete([]byte(prefixFavorite + userID + ":" + shortcutID))
}

// IsFavorite reports whether the user favorited the shortcut.
func (s *DocStore) IsFavorite(ctx context.Context, userID, shortcutID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.exists([]byte(prefixFavorite + userID + ":" + shortcutID))
}

// GetNote returns the user's note on a shortcut.
func (s *DocStore) GetNote(ctx context.Context, userID, shortcutID string) (*domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var n domain.Note
	err := s.get([]byte(prefixNote+userID+":"+shortcutID), &n)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// SaveNote upserts the note, preserving CreatedAt on update.
func (s *DocStore) SaveNote(ctx context.Context, note *domain.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if existing, err := s.GetNote(ctx, note.UserID, note.ShortcutID); err == nil {
		note.CreatedAt = existing.CreatedAt
	} else if note.CreatedAt.IsZero() {
		note.CreatedAt = now()
	}
	note.UpdatedAt = now()
	return s.set([]byte(prefixNote+note.UserID+":"+note.ShortcutID), note)
}

// DeleteNote removes the note if present.
func (s *DocStore) DeleteNote(ctx context.Context, userID, shortcutID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.delete([]byte(prefixNote + userID + ":" + shortcutID))
}

// ListTags returns all tags, oldest first.
func (s *DocStore) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].CreatedAt.Before(tags[j].CreatedAt)
	})
	if tags == nil {
		tags = []domain.Tag{}
	}
	return tags, nil
}

// GetTag returns a tag by ID.
func (s *DocStore) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	return s.tags.Get(ctx, id)
}

// CreateTag adds a tag. Tag names are unique case-insensitively.
func (s *DocStore) CreateTag(ctx context.Context, tag *domain.Tag) error {
	existing, err := s.tags.List(ctx)
	if err != nil {
		return err
	}
	for _, t := range existing {
		if strings.EqualFold(t.Name, tag.Name) {
			return ErrAlreadyExists
		}
	}
	if tag.CreatedAt.IsZero() {
		tag.CreatedAt = now()
	}
	return s.tags.Create(ctx, tag.ID, tag)
}

// DeleteTag removes a tag and sweeps its associations. The sweep is best
// effort: a failure part-way leaves orphaned associations, which list
// operations already skip.
func (s *DocStore) DeleteTag(ctx context.Context, id string) error {
	if _, err := s.tags.Get(ctx, id); err != nil {
		return err
	}
	if err := s.tags.Delete(ctx, id); err != nil {
		return err
	}

	var stale [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefixAssoc)
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			key := it.Item().Key()
			if strings.HasSuffix(string(key), ":"+id) {
				stale = append(stale, append([]byte(nil), key...))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, key := range stale {
		if err := s.delete(key); err != nil {
			if s.logger != nil {
				s.logger.Warn("orphaned tag association left behind",
					"tag_id", id, "key", string(key), "error", err)
			}
		}
	}
	return nil
}

// ListShortcutTags returns the tags a user attached to a shortcut,
// oldest first. Associations whose tag has been deleted are skipped.
func (s *DocStore) ListShortcutTags(ctx context.Context, userID, shortcutID string) ([]domain.Tag, error) {
	var assocs []domain.ShortcutTag
	err := s.iteratePrefix(ctx, prefixAssoc+userID+":"+shortcutID+":", func(val []byte) error {
		var a domain.ShortcutTag
		if err := json.Unmarshal(val, &a); err != nil {
			return err
		}
		assocs = append(assocs, a)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(assocs, func(i, j int) bool {
		return assocs[i].CreatedAt.Before(assocs[j].CreatedAt)
	})
	out := make([]domain.Tag, 0, len(assocs))
	for _, a := range assocs {
		tag, err := s.tags.Get(ctx, a.TagID)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *tag)
	}
	return out, nil
}

// AddShortcutTag attaches a tag to a shortcut for a user. Idempotent.
// The tag must exist.
func (s *DocStore) AddShortcutTag(ctx context.Context, assoc *domain.ShortcutTag) error {
	if _, err := s.tags.Get(ctx, assoc.TagID); err != nil {
		return err
	}

	key := prefixAssoc + assoc.UserID + ":" + assoc.ShortcutID + ":" + assoc.TagID
	exists, err := s.exists([]byte(key))
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if assoc.CreatedAt.IsZero() {
		assoc.CreatedAt = now()
	}
	return s.set([]byte(key), assoc)
}

// RemoveShortcutTag detaches a tag. Idempotent.
func (s *DocStore) RemoveShortcutTag(ctx context.Context, userID, shortcutID, tagID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.delete([]byte(prefixAssoc + userID + ":" + shortcutID + ":" + tagID))
}

// CreateQuizSession appends a completed session to the user's history.
func (s *DocStore) CreateQuizSession(ctx context.Context, session *domain.QuizSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if session.Score < 0 || session.Score > session.TotalQuestions {
		return ErrInvalidInput.WithMessage("score out of range")
	}
	if session.CompletedAt.IsZero() {
		session.CompletedAt = now()
	}
	key := fmt.Sprintf("%s%s:%020d:%s",
		prefixQuiz, session.UserID, session.CompletedAt.UnixNano(), session.ID)
	return s.set([]byte(key), session)
}

// ListQuizHistory returns the user's sessions, most recent first.
func (s *DocStore) ListQuizHistory(ctx context.Context, userID string) ([]domain.QuizSession, error) {
	var sessions []domain.QuizSession
	err := s.iteratePrefix(ctx, prefixQuiz+userID+":", func(val []byte) error {
		var qs domain.QuizSession
		if err := json.Unmarshal(val, &qs); err != nil {
			return err
		}
		sessions = append(sessions, qs)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Keys sort ascending by completion time; flip for most recent first.
	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	if sessions == nil {
		sessions = []domain.QuizSession{}
	}
	return sessions, nil
}

// Raw key helpers.

func (s *DocStore) get(key []byte, dest any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}

func (s *DocStore) set(key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

func (s *DocStore) delete(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (s *DocStore) exists(key []byte) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *DocStore) iteratePrefix(ctx context.Context, prefix string, fn func(val []byte) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := it.Item().Value(func(val []byte) error {
				return fn(val)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}
