package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/grajto/vocab-trainer/internal/domain"
)

func serveWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", func(c *gin.Context) { respondError(c, err) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", fmt.Errorf("card: %w", domain.ErrNotFound), http.StatusNotFound},
		{"already exists", domain.ErrAlreadyExists, http.StatusConflict},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"validation sentinel", domain.ErrValidation, http.StatusBadRequest},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveWithError(t, tt.err)
			require.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRespondError_ValidationFields(t *testing.T) {
	err := domain.NewValidationErrors([]domain.FieldError{
		{Field: "front", Message: "required"},
		{Field: "back", Message: "required"},
	})

	rec := serveWithError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Fields, 2)
	require.Equal(t, "front", body.Fields[0].Field)
	require.Equal(t, "back", body.Fields[1].Field)
}

func TestRespondError_InternalHidesDetails(t *testing.T) {
	rec := serveWithError(t, errors.New("pq: secret dsn leaked"))

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "internal error", body.Error)
}

func TestUUIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/items/:id", func(c *gin.Context) {
		id, ok := uuidParam(c, "id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id.String()})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/nope", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/9f4b7f2e-0c1d-4f7a-b0aa-3f0f3a8f0d11", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
