package providers

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/keydeckapp/keydeck-server/internal/config"
	"github.com/keydeckapp/keydeck-server/internal/logger"
	"github.com/keydeckapp/keydeck-server/internal/store"
	"github.com/keydeckapp/keydeck-server/internal/store/sqlite"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the persistence backend selected by configuration
// and seeds the catalog on first run.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	var (
		st  store.Store
		err error
	)
	switch cfg.Storage.Backend {
	case store.BackendMemory:
		st = store.NewMemoryStore()
	case store.BackendSQLite:
		st, err = sqlite.Open(filepath.Join(cfg.Storage.DataPath, "keydeck.db"), log.Logger)
	case store.BackendBadger:
		st, err = store.NewDocStore(filepath.Join(cfg.Storage.DataPath, "badger"), log.Logger)
	default:
		err = fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if err != nil {
		return nil, err
	}

	if err := store.EnsureSeeded(context.Background(), st, log.Logger); err != nil {
		_ = st.Close() //nolint:errcheck // Best-effort cleanup on failed startup
		return nil, err
	}

	log.Info("Store initialized", "backend", cfg.Storage.Backend, "path", cfg.Storage.DataPath)

	return &StoreHandle{Store: st}, nil
}
