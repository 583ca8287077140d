package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tripboard/internal/domain"
	"tripboard/internal/http/middleware"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Causes of internal
// errors are logged, never sent.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsInternal(err):
		var ie domain.InternalError
		errors.As(err, &ie)
		logRequestError(c, err)
		respondError(c, http.StatusInternalServerError, "internal_error", ie.Error(), nil)
	default:
		logRequestError(c, err)
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}

func logRequestError(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(c)).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
}
