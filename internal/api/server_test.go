package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/keydeckapp/keydeck-server/internal/config"
	"github.com/keydeckapp/keydeck-server/internal/logger"
	"github.com/keydeckapp/keydeck-server/internal/quiz"
	"github.com/keydeckapp/keydeck-server/internal/search"
	"github.com/keydeckapp/keydeck-server/internal/service"
	"github.com/keydeckapp/keydeck-server/internal/store"
)

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api   humatest.TestAPI
	store store.Store
}

// setupTestServer creates a server over a seeded in-memory store with
// all services wired. Rate limiting stays off so tests can hammer
// endpoints freely.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	ctx := context.Background()
	log := logger.New(logger.Config{
		Level:  slog.LevelError,
		Format: "json",
		Writer: io.Discard,
	})

	st := store.NewMemoryStore()
	require.NoError(t, store.EnsureSeeded(ctx, st, log.Logger))

	index, err := search.NewIndex(log)
	require.NoError(t, err)

	services := &Services{
		Catalog:  service.NewCatalogService(st, log),
		Favorite: service.NewFavoriteService(st, log),
		Note:     service.NewNoteService(st, log),
		Tag:      service.NewTagService(st, log),
		Quiz:     service.NewQuizService(st, log, quiz.Options{}),
		Search:   service.NewSearchService(index, st, log),
	}
	require.NoError(t, services.Search.Bootstrap(ctx))

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	s := NewServer(cfg, services, log)

	t.Cleanup(func() {
		s.Close()
		_ = st.Close() //nolint:errcheck // Test cleanup
		_ = index.Close()
	})

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
		store:  st,
	}
}

// decodeJSON unmarshals a response body into out.
func decodeJSON(t *testing.T, data []byte, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, out))
}
