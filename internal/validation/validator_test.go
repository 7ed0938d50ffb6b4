package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/keydeckapp/keydeck-server/internal/errors"
	"github.com/keydeckapp/keydeck-server/internal/validation"
)

type testRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Name   string `json:"name" validate:"required,min=1,max=50"`
	Color  string `json:"color" validate:"omitempty,hexcolor"`
	Score  int    `json:"score" validate:"gte=0"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	req := testRequest{
		UserID: "user-1",
		Name:   "essentials",
		Color:  "#9333ea",
		Score:  7,
	}

	assert.NoError(t, v.Validate(req))
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		req       testRequest
		wantField string
	}{
		{
			name:      "missing required field",
			req:       testRequest{UserID: "user-1", Name: ""},
			wantField: "name",
		},
		{
			name:      "invalid hex color",
			req:       testRequest{UserID: "user-1", Name: "daily", Color: "purple"},
			wantField: "color",
		},
		{
			name:      "negative score",
			req:       testRequest{UserID: "user-1", Name: "daily", Score: -1},
			wantField: "score",
		},
		{
			name:      "name too long",
			req:       testRequest{UserID: "user-1", Name: string(make([]byte, 51))},
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

			fields, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidator_UsesJSONTagNames(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{Name: "daily"})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.True(t, errors.As(err, &domainErr))

	fields, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, fields, "user_id")
}
