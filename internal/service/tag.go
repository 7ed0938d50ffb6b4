package service

import (
	"context"
	"strings"

	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/errors"
	"github.com/keydeckapp/keydeck-server/internal/id"
	"github.com/keydeckapp/keydeck-server/internal/logger"
	"github.com/keydeckapp/keydeck-server/internal/store"
)

// TagService manages global tags and per-user shortcut-tag associations.
// Tags are shared across all users; associations are private to a user.
type TagService struct {
	store  store.Store
	logger *logger.Logger
}

// NewTagService creates a new tag service.
func NewTagService(st store.Store, log *logger.Logger) *TagService {
	return &TagService{store: st, logger: log}
}

// ListTags returns all tags in creation order.
func (s *TagService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.store.ListTags(ctx)
}

// GetTag returns a tag by ID.
func (s *TagService) GetTag(ctx context.Context, tagID string) (*domain.Tag, error) {
	return s.store.GetTag(ctx, tagID)
}

// CreateTag creates a new global tag. Names are unique
// case-insensitively; a duplicate fails with ErrAlreadyExists.
func (s *TagService) CreateTag(ctx context.Context, name, color string) (*domain.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Validation("tag name must not be empty")
	}

	tag := &domain.Tag{
		ID:    id.MustGenerate("tag"),
		Name:  name,
		Color: color,
	}
	if err := s.store.CreateTag(ctx, tag); err != nil {
		return nil, err
	}

	s.logger.Info("tag created", "tag_id", tag.ID, "name", tag.Name)
	return tag, nil
}

// DeleteTag removes a tag and cascades over every user's associations
// to it. How hard the cascade tries is backend-specific; a rare orphan
// association is tolerated and skipped on read.
func (s *TagService) DeleteTag(ctx context.Context, tagID string) error {
	if err := s.store.DeleteTag(ctx, tagID); err != nil {
		return err
	}
	s.logger.Info("tag deleted", "tag_id", tagID)
	return nil
}

// ListShortcutTags returns the tags a user has put on a shortcut, in
// association order.
func (s *TagService) ListShortcutTags(ctx context.Context, userID, shortcutID string) ([]domain.Tag, error) {
	return s.store.ListShortcutTags(ctx, userID, shortcutID)
}

// AddShortcutTag associates a tag with a shortcut for a user. The tag
// and shortcut must both exist; re-adding is a no-op.
func (s *TagService) AddShortcutTag(ctx context.Context, userID, shortcutID, tagID string) error {
	if _, err := s.store.GetShortcut(ctx, shortcutID); err != nil {
		return err
	}
	assoc := &domain.ShortcutTag{
		UserID:     userID,
		ShortcutID: shortcutID,
		TagID:      tagID,
	}
	return s.store.AddShortcutTag(ctx, assoc)
}

// RemoveShortcutTag drops an association. Removing an absent
// association is a no-op.
func (s *TagService) RemoveShortcutTag(ctx context.Context, userID, shortcutID, tagID string) error {
	return s.store.RemoveShortcutTag(ctx, userID, shortcutID, tagID)
}
