package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/keydeckapp/keydeck-server/internal/catalog"
)

// EnsureSeeded loads the built-in catalog into the store if it is empty.
// Safe to call on every startup: a non-empty catalog is left untouched.
func EnsureSeeded(ctx context.Context, s Store, logger *slog.Logger) error {
	existing, err := s.ListShortcuts(ctx)
	if err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	shortcuts := catalog.Shortcuts()
	for i := range shortcuts {
		if err := s.CreateShortcut(ctx, &shortcuts[i]); err != nil {
			return fmt.Errorf("seed shortcut %s: %w", shortcuts[i].ID, err)
		}
	}
	if logger != nil {
		logger.Info("catalog seeded", "shortcuts", len(shortcuts))
	}
	return nil
}
