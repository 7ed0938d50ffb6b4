package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keydeckapp/keydeck-server/internal/catalog"
	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/store"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, store.EnsureSeeded(context.Background(), s, nil))
	return s
}

func TestOpen_SchemaIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.EnsureSeeded(context.Background(), s, nil))
	require.NoError(t, s.Close())

	// Reopen: schema reapplies, seed is skipped.
	s, err = Open(path, nil)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, store.EnsureSeeded(context.Background(), s, nil))

	all, err := s.ListShortcuts(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, len(catalog.Shortcuts()))
}

func TestListShortcuts_CatalogOrder(t *testing.T) {
	s := setupStore(t)

	all, err := s.ListShortcuts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.Shortcuts(), all)
}

func TestSearchShortcuts_EscapesLikeWildcards(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	// "%" appears in no seed entry; an unescaped LIKE would match everything.
	got, err := s.SearchShortcuts(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.SearchShortcuts(ctx, "breakpoint")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Toggle Breakpoint", got[0].Title)
}

func TestFavorites_RoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddFavorite(ctx, "u1", "sc-3"))
	require.NoError(t, s.AddFavorite(ctx, "u1", "sc-3"))

	favs, err := s.ListFavorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"sc-3"}, favs)

	ok, err := s.IsFavorite(ctx, "u1", "sc-3")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.RemoveFavorite(ctx, "u1", "sc-3"))
	favs, err = s.ListFavorites(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestSaveNote_UpsertKeepsCreatedAt(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	n1 := &domain.Note{UserID: "u1", ShortcutID: "sc-1", Text: "remember this"}
	require.NoError(t, s.SaveNote(ctx, n1))
	created := n1.CreatedAt
	require.False(t, created.IsZero())

	n2 := &domain.Note{UserID: "u1", ShortcutID: "sc-1", Text: "changed"}
	require.NoError(t, s.SaveNote(ctx, n2))

	got, err := s.GetNote(ctx, "u1", "sc-1")
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Text)
	assert.Equal(t, created, got.CreatedAt)
}

func TestCreateTag_DuplicateNameCaseInsensitive(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateTag(ctx, &domain.Tag{ID: "tag-1", Name: "Daily"}))
	err := s.CreateTag(ctx, &domain.Tag{ID: "tag-2", Name: "daily"})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestDeleteTag_CascadeInTransaction(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateTag(ctx, &domain.Tag{ID: "tag-1", Name: "daily"}))
	require.NoError(t, s.AddShortcutTag(ctx, &domain.ShortcutTag{UserID: "u1", ShortcutID: "sc-1", TagID: "tag-1"}))
	require.NoError(t, s.AddShortcutTag(ctx, &domain.ShortcutTag{UserID: "u2", ShortcutID: "sc-9", TagID: "tag-1"}))

	require.NoError(t, s.DeleteTag(ctx, "tag-1"))

	tags, err := s.ListShortcutTags(ctx, "u1", "sc-1")
	require.NoError(t, err)
	assert.Empty(t, tags)

	err = s.DeleteTag(ctx, "tag-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestQuizHistory_Order(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.CreateQuizSession(ctx, &domain.QuizSession{
			ID:             string(rune('a' + i)),
			UserID:         "u1",
			Platform:       "ubuntu",
			Score:          i + 3,
			TotalQuestions: 10,
			CompletedAt:    base.Add(time.Duration(i) * time.Hour),
		}))
	}

	hist, err := s.ListQuizHistory(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.Equal(t, 5, hist[0].Score)
	assert.Equal(t, 3, hist[2].Score)
}

func TestCreateQuizSession_ScoreRange(t *testing.T) {
	s := setupStore(t)

	err := s.CreateQuizSession(context.Background(), &domain.QuizSession{
		ID: "x", UserID: "u1", Platform: "ubuntu", Score: -1, TotalQuestions: 10,
	})
	assert.Error(t, err)
}
