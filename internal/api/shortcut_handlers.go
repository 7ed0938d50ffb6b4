package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/service"
)

func (s *Server) registerShortcutRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listShortcuts",
		Method:      http.MethodGet,
		Path:        "/api/v1/shortcuts",
		Summary:     "List shortcuts",
		Description: "Returns the full shortcut catalog in catalog order",
		Tags:        []string{"Shortcuts"},
	}, s.handleListShortcuts)

	huma.Register(s.api, huma.Operation{
		OperationID: "listShortcutsByPlatform",
		Method:      http.MethodGet,
		Path:        "/api/v1/shortcuts/platform/{platform}",
		Summary:     "List shortcuts by platform",
		Description: "Returns catalog entries for one platform",
		Tags:        []string{"Shortcuts"},
	}, s.handleListShortcutsByPlatform)

	huma.Register(s.api, huma.Operation{
		OperationID: "listShortcutsByCategory",
		Method:      http.MethodGet,
		Path:        "/api/v1/shortcuts/category/{category}",
		Summary:     "List shortcuts by category",
		Description: "Returns catalog entries for one category",
		Tags:        []string{"Shortcuts"},
	}, s.handleListShortcutsByCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchShortcuts",
		Method:      http.MethodGet,
		Path:        "/api/v1/shortcuts/search",
		Summary:     "Search shortcuts",
		Description: "Case-insensitive substring search over titles, descriptions, and keys",
		Tags:        []string{"Shortcuts"},
	}, s.handleSearchShortcuts)

	huma.Register(s.api, huma.Operation{
		OperationID: "filterShortcuts",
		Method:      http.MethodGet,
		Path:        "/api/v1/shortcuts/filter",
		Summary:     "Filter shortcuts",
		Description: "Runs the full filter state server-side; all conditions are combined with AND",
		Tags:        []string{"Shortcuts"},
	}, s.handleFilterShortcuts)
}

// === DTOs ===

// ShortcutListResponse contains a list of shortcuts in catalog order.
type ShortcutListResponse struct {
	Shortcuts []domain.Shortcut `json:"shortcuts" doc:"Shortcuts in catalog order"`
	Count     int               `json:"count" doc:"Number of shortcuts returned"`
}

// ShortcutListOutput wraps the shortcut list response for Huma.
type ShortcutListOutput struct {
	Body ShortcutListResponse
}

// PlatformShortcutsInput contains parameters for listing by platform.
type PlatformShortcutsInput struct {
	Platform string `path:"platform" doc:"Platform ID (phpstorm, archlinux, ubuntu)"`
}

// CategoryShortcutsInput contains parameters for listing by category.
type CategoryShortcutsInput struct {
	Category string `path:"category" doc:"Category ID"`
}

// SearchShortcutsInput contains the substring search term.
type SearchShortcutsInput struct {
	Query string `query:"q" doc:"Search term; blank matches everything"`
}

// FilterShortcutsInput is the full filter state.
type FilterShortcutsInput struct {
	Platform      string   `query:"platform" doc:"Platform ID; empty matches all platforms"`
	Categories    []string `query:"categories" doc:"Category IDs; absent means all categories"`
	Query         string   `query:"q" doc:"Substring search term"`
	FavoritesOnly bool     `query:"favorites_only" doc:"Keep only the user's favorites"`
	UserID        string   `query:"user_id" doc:"User whose favorites gate the result; required with favorites_only"`
}

// === Handlers ===

func (s *Server) handleListShortcuts(ctx context.Context, _ *struct{}) (*ShortcutListOutput, error) {
	shortcuts, err := s.services.Catalog.ListShortcuts(ctx)
	if err != nil {
		return nil, err
	}
	return shortcutList(shortcuts), nil
}

func (s *Server) handleListShortcutsByPlatform(ctx context.Context, input *PlatformShortcutsInput) (*ShortcutListOutput, error) {
	shortcuts, err := s.services.Catalog.ListByPlatform(ctx, input.Platform)
	if err != nil {
		return nil, err
	}
	return shortcutList(shortcuts), nil
}

func (s *Server) handleListShortcutsByCategory(ctx context.Context, input *CategoryShortcutsInput) (*ShortcutListOutput, error) {
	shortcuts, err := s.services.Catalog.ListByCategory(ctx, input.Category)
	if err != nil {
		return nil, err
	}
	return shortcutList(shortcuts), nil
}

func (s *Server) handleSearchShortcuts(ctx context.Context, input *SearchShortcutsInput) (*ShortcutListOutput, error) {
	shortcuts, err := s.services.Catalog.SearchShortcuts(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	return shortcutList(shortcuts), nil
}

func (s *Server) handleFilterShortcuts(ctx context.Context, input *FilterShortcutsInput) (*ShortcutListOutput, error) {
	shortcuts, err := s.services.Catalog.Filter(ctx, service.FilterRequest{
		Platform:      input.Platform,
		Categories:    input.Categories,
		SearchTerm:    input.Query,
		FavoritesOnly: input.FavoritesOnly,
		UserID:        input.UserID,
	})
	if err != nil {
		return nil, err
	}
	return shortcutList(shortcuts), nil
}

func shortcutList(shortcuts []domain.Shortcut) *ShortcutListOutput {
	return &ShortcutListOutput{Body: ShortcutListResponse{
		Shortcuts: shortcuts,
		Count:     len(shortcuts),
	}}
}
