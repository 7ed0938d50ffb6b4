// Package di provides dependency injection configuration for the KeyDeck server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/keydeckapp/keydeck-server/internal/config"
	"github.com/keydeckapp/keydeck-server/internal/di/providers"
	"github.com/keydeckapp/keydeck-server/internal/logger"
	"github.com/keydeckapp/keydeck-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Storage layer
	do.Provide(injector, providers.ProvideStore)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideSearchService)

	// Business services
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvideFavoriteService)
	do.Provide(injector, providers.ProvideNoteService)
	do.Provide(injector, providers.ProvideTagService)
	do.Provide(injector, providers.ProvideQuizService)

	// Server
	do.Provide(injector, providers.ProvideAPIServer)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is
// listening. This triggers lazy initialization of every provider.
func Bootstrap(injector *do.RootScope) error {
	invocations := []func() error{
		func() error { _, err := do.Invoke[*config.Config](injector); return err },
		func() error { _, err := do.Invoke[*logger.Logger](injector); return err },
		func() error { _, err := do.Invoke[*providers.StoreHandle](injector); return err },
		func() error { _, err := do.Invoke[*providers.SearchIndexHandle](injector); return err },
		func() error { _, err := do.Invoke[*service.SearchService](injector); return err },
		func() error { _, err := do.Invoke[*service.CatalogService](injector); return err },
		func() error { _, err := do.Invoke[*service.FavoriteService](injector); return err },
		func() error { _, err := do.Invoke[*service.NoteService](injector); return err },
		func() error { _, err := do.Invoke[*service.TagService](injector); return err },
		func() error { _, err := do.Invoke[*service.QuizService](injector); return err },
		func() error { _, err := do.Invoke[*providers.APIServerHandle](injector); return err },
		func() error { _, err := do.Invoke[*providers.HTTPServerHandle](injector); return err },
	}

	for _, invoke := range invocations {
		if err := invoke(); err != nil {
			return err
		}
	}
	return nil
}
