package service

import (
	"context"
	"strings"

	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/errors"
	"github.com/keydeckapp/keydeck-server/internal/logger"
	"github.com/keydeckapp/keydeck-server/internal/store"
)

// NoteService manages the single note slot per (user, shortcut) pair.
type NoteService struct {
	store  store.Store
	logger *logger.Logger
}

// NewNoteService creates a new note service.
func NewNoteService(st store.Store, log *logger.Logger) *NoteService {
	return &NoteService{store: st, logger: log}
}

// Get returns the note for a (user, shortcut) pair, or ErrNotFound.
func (s *NoteService) Get(ctx context.Context, userID, shortcutID string) (*domain.Note, error) {
	return s.store.GetNote(ctx, userID, shortcutID)
}

// Save upserts the note for a (user, shortcut) pair. Empty or
// whitespace-only text is rejected; deleting is an explicit operation,
// not a save with empty text. The shortcut must exist in the catalog.
func (s *NoteService) Save(ctx context.Context, userID, shortcutID, text string) (*domain.Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.Validation("note text must not be empty")
	}
	if _, err := s.store.GetShortcut(ctx, shortcutID); err != nil {
		return nil, err
	}

	note := &domain.Note{
		UserID:     userID,
		ShortcutID: shortcutID,
		Text:       text,
	}
	if err := s.store.SaveNote(ctx, note); err != nil {
		return nil, err
	}

	s.logger.Debug("note saved", "user_id", userID, "shortcut_id", shortcutID)
	return note, nil
}

// Delete removes the note for a (user, shortcut) pair. Deleting an
// absent note is a no-op.
func (s *NoteService) Delete(ctx context.Context, userID, shortcutID string) error {
	return s.store.DeleteNote(ctx, userID, shortcutID)
}
