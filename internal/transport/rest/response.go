package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondError translates domain errors into HTTP status codes and a
// uniform JSON body. Validation errors include the per-field breakdown.
func respondError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]fieldError, len(vErr.Errors))
		for i, fe := range vErr.Errors {
			fields[i] = fieldError{Field: fe.Field, Message: fe.Message}
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// uuidParam parses a UUID path parameter. On failure it writes a 400
// response and returns ok=false; handlers must return immediately.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:  "invalid path parameter",
			Fields: []fieldError{{Field: name, Message: "must be a valid UUID"}},
		})
		return uuid.Nil, false
	}
	return id, true
}
