package providers

import (
	"github.com/samber/do/v2"

	"github.com/keydeckapp/keydeck-server/internal/config"
	"github.com/keydeckapp/keydeck-server/internal/logger"
	"github.com/keydeckapp/keydeck-server/internal/quiz"
	"github.com/keydeckapp/keydeck-server/internal/service"
)

// ProvideCatalogService provides the shortcut catalog service.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewCatalogService(storeHandle.Store, log), nil
}

// ProvideFavoriteService provides the favorites service.
func ProvideFavoriteService(i do.Injector) (*service.FavoriteService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewFavoriteService(storeHandle.Store, log), nil
}

// ProvideNoteService provides the notes service.
func ProvideNoteService(i do.Injector) (*service.NoteService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewNoteService(storeHandle.Store, log), nil
}

// ProvideTagService provides the tag service.
func ProvideTagService(i do.Injector) (*service.TagService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewTagService(storeHandle.Store, log), nil
}

// ProvideQuizService provides the quiz service with limits from
// configuration.
func ProvideQuizService(i do.Injector) (*service.QuizService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewQuizService(storeHandle.Store, log, quiz.Options{
		QuestionCount: cfg.Quiz.QuestionCount,
		TimeLimit:     cfg.Quiz.TimeLimit,
	}), nil
}
