package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/keydeckapp/keydeck-server/internal/domain"
)

func (s *Server) registerNoteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getNote",
		Method:      http.MethodGet,
		Path:        "/api/v1/notes/{userId}/{shortcutId}",
		Summary:     "Get note",
		Description: "Returns the user's note on a shortcut",
		Tags:        []string{"Notes"},
	}, s.handleGetNote)

	huma.Register(s.api, huma.Operation{
		OperationID: "createNote",
		Method:      http.MethodPost,
		Path:        "/api/v1/notes",
		Summary:     "Create note",
		Description: "Saves the user's note on a shortcut; overwrites any existing note",
		Tags:        []string{"Notes"},
	}, s.handleCreateNote)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateNote",
		Method:      http.MethodPut,
		Path:        "/api/v1/notes/{userId}/{shortcutId}",
		Summary:     "Update note",
		Description: "Replaces the note text, preserving the creation time",
		Tags:        []string{"Notes"},
	}, s.handleUpdateNote)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteNote",
		Method:      http.MethodDelete,
		Path:        "/api/v1/notes/{userId}/{shortcutId}",
		Summary:     "Delete note",
		Description: "Removes the note; deleting an absent note is a no-op",
		Tags:        []string{"Notes"},
	}, s.handleDeleteNote)
}

// === DTOs ===

// NotePairInput identifies one (user, shortcut) note slot.
type NotePairInput struct {
	UserID     string `path:"userId" doc:"User ID"`
	ShortcutID string `path:"shortcutId" doc:"Shortcut ID"`
}

// NoteResponse contains note data in API responses.
type NoteResponse struct {
	UserID     string    `json:"user_id" doc:"User ID"`
	ShortcutID string    `json:"shortcut_id" doc:"Shortcut ID"`
	Text       string    `json:"text" doc:"Note text"`
	CreatedAt  time.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt  time.Time `json:"updated_at" doc:"Last update time"`
}

// NoteOutput wraps the note response for Huma.
type NoteOutput struct {
	Body NoteResponse
}

// CreateNoteRequest is the request body for creating a note.
type CreateNoteRequest struct {
	UserID     string `json:"user_id" validate:"required" doc:"User ID"`
	ShortcutID string `json:"shortcut_id" validate:"required" doc:"Shortcut ID"`
	Text       string `json:"text" validate:"required,max=2000" doc:"Note text"`
}

// CreateNoteInput wraps the create note request for Huma.
type CreateNoteInput struct {
	Body CreateNoteRequest
}

// UpdateNoteRequest is the request body for updating a note.
type UpdateNoteRequest struct {
	Text string `json:"text" validate:"required,max=2000" doc:"Note text"`
}

// UpdateNoteInput wraps the update note request for Huma.
type UpdateNoteInput struct {
	UserID     string `path:"userId" doc:"User ID"`
	ShortcutID string `path:"shortcutId" doc:"Shortcut ID"`
	Body       UpdateNoteRequest
}

// === Handlers ===

func (s *Server) handleGetNote(ctx context.Context, input *NotePairInput) (*NoteOutput, error) {
	note, err := s.services.Note.Get(ctx, input.UserID, input.ShortcutID)
	if err != nil {
		return nil, err
	}
	return noteOutput(note), nil
}

func (s *Server) handleCreateNote(ctx context.Context, input *CreateNoteInput) (*NoteOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	note, err := s.services.Note.Save(ctx, input.Body.UserID, input.Body.ShortcutID, input.Body.Text)
	if err != nil {
		return nil, err
	}
	return noteOutput(note), nil
}

func (s *Server) handleUpdateNote(ctx context.Context, input *UpdateNoteInput) (*NoteOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	note, err := s.services.Note.Save(ctx, input.UserID, input.ShortcutID, input.Body.Text)
	if err != nil {
		return nil, err
	}
	return noteOutput(note), nil
}

func (s *Server) handleDeleteNote(ctx context.Context, input *NotePairInput) (*MessageOutput, error) {
	if err := s.services.Note.Delete(ctx, input.UserID, input.ShortcutID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Note deleted"}}, nil
}

func noteOutput(note *domain.Note) *NoteOutput {
	return &NoteOutput{Body: NoteResponse{
		UserID:     note.UserID,
		ShortcutID: note.ShortcutID,
		Text:       note.Text,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}}
}
