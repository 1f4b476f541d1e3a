package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errNotFound = errors.New("not found")
	errConflict = errors.New("already exists")
)

// statusError is an error whose message is safe to show to the client with
// the given HTTP status.
type statusError struct {
	Status  int
	Message string
}

func (e *statusError) Error() string { return e.Message }

func badRequest(msg string) error {
	return &statusError{Status: http.StatusBadRequest, Message: msg}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondError maps err to a response. resource names the thing being
// handled ("diet entry") for the 404 and 409 messages. Anything unexpected
// is logged and answered with a generic 500.
func (h *Handler) respondError(c *gin.Context, err error, resource string) {
	var se *statusError
	switch {
	case errors.As(err, &se):
		apiError(c, se.Status, se.Message)
	case errors.Is(err, errNotFound):
		apiError(c, http.StatusNotFound, resource+" not found")
	case errors.Is(err, errConflict):
		apiError(c, http.StatusConflict, resource+" already exists")
	default:
		h.log.Error("request failed",
			zap.String("route", c.FullPath()),
			zap.Int("user_id", c.GetInt("user_id")),
			zap.Error(err))
		apiError(c, http.StatusInternalServerError, "internal server error")
	}
}
