package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cory-johannsen/charhp/internal/game/character"
	"github.com/cory-johannsen/charhp/internal/game/health"
)

type errorBody struct {
	Error string `json:"error"`
}

// statusFor maps a domain error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, health.ErrNotFound), errors.Is(err, character.ErrSheetNotFound):
		return http.StatusNotFound
	case errors.Is(err, health.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, health.ErrNotImplemented):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes the error body and records err on the context for the
// request logger. 5xx bodies carry a generic message.
func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, errorBody{Error: msg})
}
