package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleError_Mapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("get plan"), domain.ErrNotFound), http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"already exists", domain.ErrAlreadyExists, http.StatusConflict},
		{"validation sentinel", domain.ErrValidation, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(rec, req, testLogger(), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleError_ValidationFields(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	err := domain.NewValidationErrors([]domain.FieldError{
		{Field: "title", Message: "required"},
		{Field: "end_date", Message: "must not precede start_date"},
	})
	handleError(rec, req, testLogger(), err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, "title", resp.Fields[0].Field)
	assert.Equal(t, "end_date", resp.Fields[1].Field)
}

func TestHandleError_ReorderWriteConflict(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	err := &domain.ReorderWriteError{
		EntryID: uuid.New(),
		Applied: 3,
		Err:     errors.New("connection reset"),
	}
	handleError(rec, req, testLogger(), err)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Applied)
	assert.Equal(t, 3, *resp.Applied)
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title": "Jeju", "bogus": 1}`))

	var dst struct {
		Title string `json:"title"`
	}
	err := decodeJSON(req, &dst)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
