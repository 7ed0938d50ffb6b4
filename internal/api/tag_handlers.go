package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/keydeckapp/keydeck-server/internal/domain"
)

func (s *Server) registerTagRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags",
		Summary:     "List tags",
		Description: "Returns all tags in creation order",
		Tags:        []string{"Tags"},
	}, s.handleListTags)

	huma.Register(s.api, huma.Operation{
		OperationID: "createTag",
		Method:      http.MethodPost,
		Path:        "/api/v1/tags",
		Summary:     "Create tag",
		Description: "Creates a new global tag; names are unique case-insensitively",
		Tags:        []string{"Tags"},
	}, s.handleCreateTag)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteTag",
		Method:      http.MethodDelete,
		Path:        "/api/v1/tags/{tagId}",
		Summary:     "Delete tag",
		Description: "Deletes a tag and cascades over all users' associations",
		Tags:        []string{"Tags"},
	}, s.handleDeleteTag)

	huma.Register(s.api, huma.Operation{
		OperationID: "listShortcutTags",
		Method:      http.MethodGet,
		Path:        "/api/v1/shortcut-tags/{userId}/{shortcutId}",
		Summary:     "List shortcut tags",
		Description: "Returns the tags a user put on a shortcut",
		Tags:        []string{"Tags"},
	}, s.handleListShortcutTags)

	huma.Register(s.api, huma.Operation{
		OperationID: "addShortcutTag",
		Method:      http.MethodPost,
		Path:        "/api/v1/shortcut-tags",
		Summary:     "Tag shortcut",
		Description: "Associates a tag with a shortcut for a user; re-adding is a no-op",
		Tags:        []string{"Tags"},
	}, s.handleAddShortcutTag)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeShortcutTag",
		Method:      http.MethodDelete,
		Path:        "/api/v1/shortcut-tags/{userId}/{shortcutId}/{tagId}",
		Summary:     "Untag shortcut",
		Description: "Removes the association; removing an absent one is a no-op",
		Tags:        []string{"Tags"},
	}, s.handleRemoveShortcutTag)
}

// === DTOs ===

// TagResponse contains tag data in API responses.
type TagResponse struct {
	ID        string    `json:"id" doc:"Tag ID"`
	Name      string    `json:"name" doc:"Tag name"`
	Color     string    `json:"color,omitempty" doc:"Display color"`
	CreatedAt time.Time `json:"created_at" doc:"Creation time"`
}

// TagListResponse contains a list of tags.
type TagListResponse struct {
	Tags []TagResponse `json:"tags" doc:"Tags in creation order"`
}

// TagListOutput wraps the tag list response for Huma.
type TagListOutput struct {
	Body TagListResponse
}

// TagOutput wraps a single tag response for Huma.
type TagOutput struct {
	Body TagResponse
}

// CreateTagRequest is the request body for creating a tag.
type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=50" doc:"Tag name"`
	Color string `json:"color,omitempty" validate:"omitempty,hexcolor" doc:"Display color"`
}

// CreateTagInput wraps the create tag request for Huma.
type CreateTagInput struct {
	Body CreateTagRequest
}

// DeleteTagInput identifies the tag to delete.
type DeleteTagInput struct {
	TagID string `path:"tagId" doc:"Tag ID"`
}

// ShortcutTagPairInput identifies one (user, shortcut) association list.
type ShortcutTagPairInput struct {
	UserID     string `path:"userId" doc:"User ID"`
	ShortcutID string `path:"shortcutId" doc:"Shortcut ID"`
}

// AddShortcutTagRequest is the request body for tagging a shortcut.
type AddShortcutTagRequest struct {
	UserID     string `json:"user_id" validate:"required" doc:"User ID"`
	ShortcutID string `json:"shortcut_id" validate:"required" doc:"Shortcut ID"`
	TagID      string `json:"tag_id" validate:"required" doc:"Tag ID"`
}

// AddShortcutTagInput wraps the tag shortcut request for Huma.
type AddShortcutTagInput struct {
	Body AddShortcutTagRequest
}

// RemoveShortcutTagInput identifies one association to remove.
type RemoveShortcutTagInput struct {
	UserID     string `path:"userId" doc:"User ID"`
	ShortcutID string `path:"shortcutId" doc:"Shortcut ID"`
	TagID      string `path:"tagId" doc:"Tag ID"`
}

// === Handlers ===

func (s *Server) handleListTags(ctx context.Context, _ *struct{}) (*TagListOutput, error) {
	tags, err := s.services.Tag.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	return tagList(tags), nil
}

func (s *Server) handleCreateTag(ctx context.Context, input *CreateTagInput) (*TagOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	tag, err := s.services.Tag.CreateTag(ctx, input.Body.Name, input.Body.Color)
	if err != nil {
		return nil, err
	}
	return &TagOutput{Body: tagResponse(*tag)}, nil
}

func (s *Server) handleDeleteTag(ctx context.Context, input *DeleteTagInput) (*MessageOutput, error) {
	if err := s.services.Tag.DeleteTag(ctx, input.TagID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Tag deleted"}}, nil
}

func (s *Server) handleListShortcutTags(ctx context.Context, input *ShortcutTagPairInput) (*TagListOutput, error) {
	tags, err := s.services.Tag.ListShortcutTags(ctx, input.UserID, input.ShortcutID)
	if err != nil {
		return nil, err
	}
	return tagList(tags), nil
}

func (s *Server) handleAddShortcutTag(ctx context.Context, input *AddShortcutTagInput) (*MessageOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	if err := s.services.Tag.AddShortcutTag(ctx, input.Body.UserID, input.Body.ShortcutID, input.Body.TagID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Tag added to shortcut"}}, nil
}

func (s *Server) handleRemoveShortcutTag(ctx context.Context, input *RemoveShortcutTagInput) (*MessageOutput, error) {
	if err := s.services.Tag.RemoveShortcutTag(ctx, input.UserID, input.ShortcutID, input.TagID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Tag removed from shortcut"}}, nil
}

func tagResponse(t domain.Tag) TagResponse {
	return TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
	}
}

func tagList(tags []domain.Tag) *TagListOutput {
	resp := make([]TagResponse, len(tags))
	for i, t := range tags {
		resp[i] = tagResponse(t)
	}
	return &TagListOutput{Body: TagListResponse{Tags: resp}}
}
