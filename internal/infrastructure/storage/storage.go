// Package storage picks the credential store backend once at startup.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ulysse/cms-api/internal/core/ports"
	"github.com/ulysse/cms-api/internal/infrastructure/config"
	"github.com/ulysse/cms-api/internal/infrastructure/db/memory"
	mongodb "github.com/ulysse/cms-api/internal/infrastructure/db/mongo"
	"github.com/ulysse/cms-api/internal/infrastructure/db/postgres"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Backend bundles the stores served by one driver. Contacts is nil when the
// driver has nowhere durable to put submissions.
type Backend struct {
	Name     string
	Users    ports.UserStore
	Contacts ports.ContactRepository

	ping  func(context.Context) error
	close func(context.Context) error
}

// Ping checks the backend is reachable. The memory backend always is.
func (b *Backend) Ping(ctx context.Context) error {
	if b.ping == nil {
		return nil
	}
	return b.ping(ctx)
}

func (b *Backend) Close(ctx context.Context) error {
	if b.close == nil {
		return nil
	}
	return b.close(ctx)
}

// Memory returns the process-local backend.
func Memory() *Backend {
	return &Backend{
		Name:     DriverMemory,
		Users:    memory.NewUserStore(),
		Contacts: memory.NewContactStore(),
	}
}

// Open dials the configured driver. When the durable store cannot be reached
// the failure is logged and the memory backend is returned instead; there is
// no later attempt to reconnect.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) *Backend {
	b, err := OpenDurable(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Str("driver", cfg.Store.Driver).
			Msg("durable store unavailable, falling back to in-memory store")
		return Memory()
	}
	log.Info().Str("driver", b.Name).Msg("credential store ready")
	return b
}

// OpenDurable dials the configured driver and reports failures to the
// caller. The memory driver never fails.
func OpenDurable(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Store.Driver {
	case DriverMemory:
		return Memory(), nil
	case DriverMongo:
		return openMongo(ctx, cfg)
	case DriverPostgres:
		return openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func openMongo(ctx context.Context, cfg *config.Config) (*Backend, error) {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Store.ConnectTimeout,
	})
	if err != nil {
		return nil, err
	}

	users := mongodb.NewUserStore(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &Backend{
		Name:     DriverMongo,
		Users:    users,
		Contacts: mongodb.NewContactRepository(db),
		ping:     func(ctx context.Context) error { return client.Ping(ctx, nil) },
		close:    client.Disconnect,
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Backend, error) {
	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:     cfg.Postgres.URL,
		Timeout: cfg.Store.ConnectTimeout,
	})
	if err != nil {
		return nil, err
	}

	users := postgres.NewUserStore(pool)
	if err := users.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Backend{
		Name:  DriverPostgres,
		Users: users,
		ping:  pool.Ping,
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}
