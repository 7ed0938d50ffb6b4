package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/keydeckapp/keydeck-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchCatalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Full-text search",
		Description: "Ranked full-text search over the catalog with stemming and fuzzy matching",
		Tags:        []string{"Search"},
	}, s.handleSearchCatalog)
}

// === DTOs ===

// SearchCatalogInput contains the full-text query parameters.
type SearchCatalogInput struct {
	Query      string   `query:"q" doc:"Search terms; blank matches everything"`
	Platform   string   `query:"platform" doc:"Restrict hits to one platform"`
	Categories []string `query:"categories" doc:"Restrict hits to these categories"`
	Limit      int      `query:"limit" minimum:"1" maximum:"100" doc:"Page size, default 20"`
	Offset     int      `query:"offset" minimum:"0" doc:"Hits to skip"`
}

// SearchCatalogOutput wraps the search result for Huma.
type SearchCatalogOutput struct {
	Body search.Result
}

// === Handlers ===

func (s *Server) handleSearchCatalog(ctx context.Context, input *SearchCatalogInput) (*SearchCatalogOutput, error) {
	params := search.DefaultParams()
	params.Query = input.Query
	params.Platform = input.Platform
	params.Categories = input.Categories
	if input.Limit > 0 {
		params.Limit = input.Limit
	}
	if input.Offset > 0 {
		params.Offset = input.Offset
	}

	result, err := s.services.Search.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	return &SearchCatalogOutput{Body: *result}, nil
}
