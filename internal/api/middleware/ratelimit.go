package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/ulysse/cms-api/internal/core/domain"
)

// RateLimit throttles requests per client IP against store.
func RateLimit(store echomw.RateLimiterStore) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(echo.Context, error) error {
			return domain.ErrRateLimited
		},
		DenyHandler: func(echo.Context, string, error) error {
			return domain.ErrRateLimited
		},
	})
}

// MemoryRateLimitStore allows about limit requests per window for each
// identifier, held in process memory.
func MemoryRateLimitStore(limit int, window time.Duration) echomw.RateLimiterStore {
	if limit <= 0 {
		limit = 1
	}
	return echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(window / time.Duration(limit)),
		Burst:     limit,
		ExpiresIn: window,
	})
}
