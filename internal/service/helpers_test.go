package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keydeckapp/keydeck-server/internal/errors"
	"github.com/keydeckapp/keydeck-server/internal/logger"
	"github.com/keydeckapp/keydeck-server/internal/store"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  slog.LevelError,
		Format: "json",
		Writer: io.Discard,
	})
}

func newSeededStore(t *testing.T) store.Store {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, store.EnsureSeeded(context.Background(), st, newTestLogger().Logger))
	t.Cleanup(func() {
		_ = st.Close() //nolint:errcheck // Test cleanup
	})
	return st
}

// faultyStore wraps a store and fails favorite writes on demand.
type faultyStore struct {
	store.Store
	failWrites bool
}

func (f *faultyStore) AddFavorite(ctx context.Context, userID, shortcutID string) error {
	if f.failWrites {
		return errors.Storage("write failed", nil)
	}
	return f.Store.AddFavorite(ctx, userID, shortcutID)
}

func (f *faultyStore) RemoveFavorite(ctx context.Context, userID, shortcutID string) error {
	if f.failWrites {
		return errors.Storage("write failed", nil)
	}
	return f.Store.RemoveFavorite(ctx, userID, shortcutID)
}
