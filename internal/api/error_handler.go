package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ulysse/cms-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes and client messages.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders {"error": msg} for 404, 405 and 5xx, and {"message": msg} for
//     every other status, the envelope existing site clients read.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		key := "message"
		if code == http.StatusNotFound || code == http.StatusMethodNotAllowed || code >= http.StatusInternalServerError {
			key = "error"
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, map[string]string{key: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest, "Email and password are required"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "User already exists!"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrMissingToken):
		return http.StatusUnauthorized, "Token is missing!"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Token is invalid!"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Cannot perform that function!"
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "Too many requests"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrServiceNotFound):
		return http.StatusNotFound, "Service not found"
	case errors.Is(err, domain.ErrInsightNotFound):
		return http.StatusNotFound, "Insight not found"
	case errors.Is(err, domain.ErrCaseStudyNotFound):
		return http.StatusNotFound, "Case study not found"
	case errors.Is(err, domain.ErrTeamMemberNotFound):
		return http.StatusNotFound, "Team member not found"
	case errors.Is(err, domain.ErrContentTypeNotFound):
		return http.StatusNotFound, "Content type not found"
	}

	// Echo's own errors (bind failures, router 404/405, body limit).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch {
		case he.Code == http.StatusNotFound:
			return he.Code, "Not found"
		case he.Code == http.StatusMethodNotAllowed:
			return he.Code, "Method not allowed"
		case he.Code < http.StatusInternalServerError:
			return he.Code, fmt.Sprintf("%v", he.Message)
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}
