package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RateLimitStore is a fixed-window counter shared by every API replica.
// Key format: ratelimit:<name>:<identifier>:<window_start_unix>
//
// It satisfies echo's middleware.RateLimiterStore. When Redis cannot be
// reached the request is allowed and the failure is logged.
type RateLimitStore struct {
	client  *redis.Client
	name    string
	limit   int64
	window  time.Duration
	timeout time.Duration
	log     zerolog.Logger
	now     func() time.Time
}

// NewRateLimitStore allows limit requests per identifier in each window.
func NewRateLimitStore(client *redis.Client, name string, limit int, window time.Duration, log zerolog.Logger) *RateLimitStore {
	return &RateLimitStore{
		client:  client,
		name:    name,
		limit:   int64(limit),
		window:  window,
		timeout: 500 * time.Millisecond,
		log:     log,
		now:     time.Now,
	}
}

func (s *RateLimitStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	key := s.key(identifier, s.now())

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, key)
		p.Expire(ctx, key, s.window)
		return nil
	})
	if err != nil {
		s.log.Warn().Err(err).Str("limiter", s.name).Msg("rate limit store unavailable, allowing request")
		return true, nil
	}

	return incr.Val() <= s.limit, nil
}

func (s *RateLimitStore) key(identifier string, at time.Time) string {
	start := at.Truncate(s.window).Unix()
	return fmt.Sprintf("ratelimit:%s:%s:%d", s.name, identifier, start)
}
