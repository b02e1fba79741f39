package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

const msgInvalidBody = "Invalid request body"

// errorResponse is the envelope of every handled failure.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// statusOf maps the domain error taxonomy onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err in the error envelope. Unclassified errors are
// logged and answered with fallback so internals never reach the client.
func writeError(c echo.Context, log zerolog.Logger, err error, fallback string) error {
	status := statusOf(err)
	resp := errorResponse{Error: fallback}

	switch {
	case errors.Is(err, domain.ErrUpstream):
		resp.Error = domain.MessageOf(err)
		resp.Details = domain.DetailsOf(err)
		log.Warn().Err(err).Str("path", c.Path()).Msg("upstream failure")
	case status == http.StatusInternalServerError:
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg(fallback)
	default:
		if msg := domain.MessageOf(err); msg != "" {
			resp.Error = msg
		}
	}

	return c.JSON(status, resp)
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.Validation(msgInvalidBody)
	}
	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(req)
}
