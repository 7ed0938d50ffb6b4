package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotes_CreateAndGet(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/notes", map[string]any{
		"user_id":     "user-1",
		"shortcut_id": "sc-1",
		"text":        "use this constantly",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/notes/user-1/sc-1")
	require.Equal(t, http.StatusOK, resp.Code)

	var note NoteResponse
	decodeJSON(t, resp.Body.Bytes(), &note)
	assert.Equal(t, "user-1", note.UserID)
	assert.Equal(t, "sc-1", note.ShortcutID)
	assert.Equal(t, "use this constantly", note.Text)
	assert.False(t, note.CreatedAt.IsZero())
}

func TestUpdateNote_PreservesCreatedAt(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/notes", map[string]any{
		"user_id":     "user-1",
		"shortcut_id": "sc-2",
		"text":        "first draft",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var created NoteResponse
	decodeJSON(t, resp.Body.Bytes(), &created)

	resp = ts.api.Put("/api/v1/notes/user-1/sc-2", map[string]any{
		"text": "second draft",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var updated NoteResponse
	decodeJSON(t, resp.Body.Bytes(), &updated)
	assert.Equal(t, "second draft", updated.Text)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestCreateNote_BlankText(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/notes", map[string]any{
		"user_id":     "user-1",
		"shortcut_id": "sc-1",
		"text":        "   ",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var apiErr APIError
	decodeJSON(t, resp.Body.Bytes(), &apiErr)
	assert.Equal(t, "VALIDATION", apiErr.Code)
}

func TestCreateNote_UnknownShortcut(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/notes", map[string]any{
		"user_id":     "user-1",
		"shortcut_id": "sc-999",
		"text":        "lost note",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetNote_Missing(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/notes/user-1/sc-1")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteNote_Idempotent(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/notes", map[string]any{
		"user_id":     "user-1",
		"shortcut_id": "sc-3",
		"text":        "temporary",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Delete("/api/v1/notes/user-1/sc-3")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/notes/user-1/sc-3")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = ts.api.Delete("/api/v1/notes/user-1/sc-3")
	assert.Equal(t, http.StatusOK, resp.Code)
}
