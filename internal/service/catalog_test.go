package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keydeckapp/keydeck-server/internal/catalog"
	"github.com/keydeckapp/keydeck-server/internal/errors"
)

func TestCatalogService_ListShortcuts(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newSeededStore(t), newTestLogger())

	shortcuts, err := svc.ListShortcuts(ctx)
	require.NoError(t, err)
	assert.Len(t, shortcuts, len(catalog.Shortcuts()))
}

func TestCatalogService_ListByPlatform(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newSeededStore(t), newTestLogger())

	shortcuts, err := svc.ListByPlatform(ctx, "archlinux")
	require.NoError(t, err)
	assert.Len(t, shortcuts, 27)

	// Unknown platforms yield an empty list, not an error.
	shortcuts, err = svc.ListByPlatform(ctx, "windows")
	require.NoError(t, err)
	assert.Empty(t, shortcuts)
}

func TestCatalogService_Filter(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newSeededStore(t), newTestLogger())

	shortcuts, err := svc.Filter(ctx, FilterRequest{
		Platform:   "ubuntu",
		Categories: []string{"window"},
		SearchTerm: "lock",
	})
	require.NoError(t, err)
	require.Len(t, shortcuts, 1)
	assert.Equal(t, "Lock Screen", shortcuts[0].Title)
}

func TestCatalogService_FilterFavoritesOnly(t *testing.T) {
	ctx := context.Background()
	st := newSeededStore(t)
	svc := NewCatalogService(st, newTestLogger())

	require.NoError(t, st.AddFavorite(ctx, "user-1", "sc-2"))
	require.NoError(t, st.AddFavorite(ctx, "user-1", "sc-7"))

	shortcuts, err := svc.Filter(ctx, FilterRequest{
		FavoritesOnly: true,
		UserID:        "user-1",
	})
	require.NoError(t, err)
	require.Len(t, shortcuts, 2)
	// Catalog order is preserved regardless of favoriting order.
	assert.Equal(t, "sc-2", shortcuts[0].ID)
	assert.Equal(t, "sc-7", shortcuts[1].ID)
}

func TestCatalogService_FilterFavoritesRequiresUser(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newSeededStore(t), newTestLogger())

	_, err := svc.Filter(ctx, FilterRequest{FavoritesOnly: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrValidation)
}

func TestCatalogService_Metadata(t *testing.T) {
	svc := NewCatalogService(newSeededStore(t), newTestLogger())

	assert.Len(t, svc.Platforms(), 3)
	assert.Len(t, svc.Categories(), 5)
}
