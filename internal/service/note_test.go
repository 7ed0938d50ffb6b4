package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keydeckapp/keydeck-server/internal/errors"
	"github.com/keydeckapp/keydeck-server/internal/store"
)

func TestNoteService_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(newSeededStore(t), newTestLogger())

	note, err := svc.Save(ctx, "user-1", "sc-1", "remember this one")
	require.NoError(t, err)
	assert.Equal(t, "remember this one", note.Text)
	assert.False(t, note.CreatedAt.IsZero())

	got, err := svc.Get(ctx, "user-1", "sc-1")
	require.NoError(t, err)
	assert.Equal(t, "remember this one", got.Text)
}

func TestNoteService_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(newSeededStore(t), newTestLogger())

	first, err := svc.Save(ctx, "user-1", "sc-1", "first draft")
	require.NoError(t, err)
	second, err := svc.Save(ctx, "user-1", "sc-1", "second draft")
	require.NoError(t, err)

	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())

	got, err := svc.Get(ctx, "user-1", "sc-1")
	require.NoError(t, err)
	assert.Equal(t, "second draft", got.Text)
}

func TestNoteService_RejectsBlankText(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(newSeededStore(t), newTestLogger())

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := svc.Save(ctx, "user-1", "sc-1", text)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrValidation)
	}
}

func TestNoteService_SaveUnknownShortcut(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(newSeededStore(t), newTestLogger())

	_, err := svc.Save(ctx, "user-1", "sc-9999", "text")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNoteService_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewNoteService(newSeededStore(t), newTestLogger())

	_, err := svc.Save(ctx, "user-1", "sc-1", "text")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "user-1", "sc-1"))
	require.NoError(t, svc.Delete(ctx, "user-1", "sc-1"))

	_, err = svc.Get(ctx, "user-1", "sc-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
