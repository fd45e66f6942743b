package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/ulysse/cms-api/internal/api/metrics"
	"github.com/ulysse/cms-api/internal/core/domain"
	"github.com/ulysse/cms-api/internal/core/ports"
)

// TokenHeader carries the bearer token on protected requests.
const TokenHeader = "x-access-token"

const userKey = "auth.user"

// Auth verifies the token in TokenHeader and resolves its email against the
// credential store. A verified token whose user no longer exists still
// reaches the handler, with no current user set.
func Auth(verifier ports.TokenVerifier, users ports.UserStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingToken
			}

			id, err := verifier.Verify(token)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return domain.ErrInvalidToken
			}

			user, err := users.FindByEmail(c.Request().Context(), id.Email)
			switch {
			case err == nil:
				c.Set(userKey, user)
			case errors.Is(err, domain.ErrUserNotFound):
			default:
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return domain.ErrInvalidToken
			}

			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by Auth, if any.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	u, ok := c.Get(userKey).(*domain.User)
	return u, ok && u != nil
}
