package api

import (
	"github.com/keydeckapp/keydeck-server/internal/service"
)

// Services groups the business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Catalog  *service.CatalogService
	Favorite *service.FavoriteService
	Note     *service.NoteService
	Tag      *service.TagService
	Quiz     *service.QuizService
	Search   *service.SearchService
}
