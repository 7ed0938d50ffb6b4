package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerFavoriteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFavorites",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites/{userId}",
		Summary:     "List favorites",
		Description: "Returns the user's favorite shortcut IDs in insertion order",
		Tags:        []string{"Favorites"},
	}, s.handleListFavorites)

	huma.Register(s.api, huma.Operation{
		OperationID: "addFavorite",
		Method:      http.MethodPost,
		Path:        "/api/v1/favorites",
		Summary:     "Add favorite",
		Description: "Adds a shortcut to the user's favorites; re-adding is a no-op",
		Tags:        []string{"Favorites"},
	}, s.handleAddFavorite)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeFavorite",
		Method:      http.MethodDelete,
		Path:        "/api/v1/favorites/{userId}/{shortcutId}",
		Summary:     "Remove favorite",
		Description: "Removes a shortcut from the user's favorites; removing an absent one is a no-op",
		Tags:        []string{"Favorites"},
	}, s.handleRemoveFavorite)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleFavorite",
		Method:      http.MethodPost,
		Path:        "/api/v1/favorites/{userId}/{shortcutId}/toggle",
		Summary:     "Toggle favorite",
		Description: "Flips the favorite state; rejected with 409 while another update is in flight",
		Tags:        []string{"Favorites"},
	}, s.handleToggleFavorite)
}

// === DTOs ===

// ListFavoritesInput identifies whose favorites to list.
type ListFavoritesInput struct {
	UserID string `path:"userId" doc:"User ID"`
}

// FavoritesResponse contains favorite shortcut IDs.
type FavoritesResponse struct {
	Favorites []string `json:"favorites" doc:"Shortcut IDs in insertion order"`
}

// FavoritesOutput wraps the favorites response for Huma.
type FavoritesOutput struct {
	Body FavoritesResponse
}

// AddFavoriteRequest is the request body for adding a favorite.
type AddFavoriteRequest struct {
	UserID     string `json:"user_id" validate:"required" doc:"User ID"`
	ShortcutID string `json:"shortcut_id" validate:"required" doc:"Shortcut ID"`
}

// AddFavoriteInput wraps the add favorite request for Huma.
type AddFavoriteInput struct {
	Body AddFavoriteRequest
}

// FavoritePairInput identifies one (user, shortcut) favorite.
type FavoritePairInput struct {
	UserID     string `path:"userId" doc:"User ID"`
	ShortcutID string `path:"shortcutId" doc:"Shortcut ID"`
}

// ToggleFavoriteResponse reports the state after a toggle.
type ToggleFavoriteResponse struct {
	Favorited bool `json:"favorited" doc:"Whether the shortcut is now a favorite"`
}

// ToggleFavoriteOutput wraps the toggle response for Huma.
type ToggleFavoriteOutput struct {
	Body ToggleFavoriteResponse
}

// === Handlers ===

func (s *Server) handleListFavorites(ctx context.Context, input *ListFavoritesInput) (*FavoritesOutput, error) {
	ids, err := s.services.Favorite.List(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &FavoritesOutput{Body: FavoritesResponse{Favorites: ids}}, nil
}

func (s *Server) handleAddFavorite(ctx context.Context, input *AddFavoriteInput) (*MessageOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	if err := s.services.Favorite.Add(ctx, input.Body.UserID, input.Body.ShortcutID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Favorite added"}}, nil
}

func (s *Server) handleRemoveFavorite(ctx context.Context, input *FavoritePairInput) (*MessageOutput, error) {
	if err := s.services.Favorite.Remove(ctx, input.UserID, input.ShortcutID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Favorite removed"}}, nil
}

func (s *Server) handleToggleFavorite(ctx context.Context, input *FavoritePairInput) (*ToggleFavoriteOutput, error) {
	favorited, err := s.services.Favorite.Toggle(ctx, input.UserID, input.ShortcutID)
	if err != nil {
		return nil, err
	}
	return &ToggleFavoriteOutput{Body: ToggleFavoriteResponse{Favorited: favorited}}, nil
}
