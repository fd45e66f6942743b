package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/ulysse/cms-api/internal/api"
	"github.com/ulysse/cms-api/internal/api/metrics"
	"github.com/ulysse/cms-api/internal/api/middleware"
	"github.com/ulysse/cms-api/internal/core/service"
	"github.com/ulysse/cms-api/internal/infrastructure/config"
	"github.com/ulysse/cms-api/internal/infrastructure/db/memory"
	"github.com/ulysse/cms-api/internal/infrastructure/db/redis"
	"github.com/ulysse/cms-api/internal/infrastructure/http/handlers"
	"github.com/ulysse/cms-api/internal/infrastructure/queue"
	"github.com/ulysse/cms-api/internal/infrastructure/security"
	"github.com/ulysse/cms-api/internal/infrastructure/storage"
	"github.com/ulysse/cms-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API",
		Action: func(cctx *cli.Context) error {
			cfg, err := config.Load(cctx.Context)
			if err != nil {
				return err
			}
			return serve(cctx.Context, cfg)
		},
	}
}

func initLogger(cfg *config.Config) zerolog.Logger {
	return logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "cmsapi",
	})
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := initLogger(cfg)
	proxies, err := cfg.HTTP.TrustedProxyNets()
	if err != nil {
		return err
	}
	if cfg.UsesDefaultSecret() {
		log.Warn().Msg("SECRET_KEY not set, signing tokens with the default key")
	}

	reg := prometheus.NewRegistry()
	metrics.Register(reg)

	backend := storage.Open(ctx, cfg, log)
	metrics.StoreBackend.WithLabelValues(backend.Name).Set(1)

	tokens := security.NewTokenIssuer([]byte(cfg.Auth.SecretKey), cfg.Auth.TokenTTL)
	authService := service.NewAuthService(backend.Users, security.NewBcryptHasher(cfg.Auth.BcryptCost), tokens)
	contentService := service.NewContentService(memory.NewCatalog(memory.Seed()))

	dispatcher := queue.NewDispatcher(cfg.Contact.Workers, cfg.Contact.QueueSize,
		service.NewContactService(backend.Contacts, log), log)
	dispatcher.Start(ctx)

	readiness := map[string]handlers.Check{"store": backend.Ping}

	rdb := connectRedis(ctx, cfg, log)
	if rdb != nil {
		readiness["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	e := api.NewRouter(api.Options{
		Log:            log,
		Users:          backend.Users,
		Tokens:         tokens,
		Auth:           authService,
		Content:        contentService,
		Contacts:       dispatcher,
		Readiness:      readiness,
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		BodyLimit:      cfg.HTTP.BodyLimit,
		RateLimits:     rateLimits(cfg, rdb, log),
		TrustedProxies: proxies,
		Registry:       reg,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", backend.Name).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown requested")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("contact queue did not drain")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	closeStore(shutdownCtx, backend, log)
	return serveErr
}

// connectRedis returns nil when Redis is disabled or unreachable; rate
// limits then fall back to per-process counters.
func connectRedis(ctx context.Context, cfg *config.Config, log zerolog.Logger) *goredis.Client {
	if !cfg.Redis.Enabled || !cfg.RateLimit.Enabled {
		return nil
	}
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, using in-process rate limits")
		return nil
	}
	return rdb
}

func rateLimits(cfg *config.Config, rdb *goredis.Client, log zerolog.Logger) api.RateLimits {
	if !cfg.RateLimit.Enabled {
		return api.RateLimits{}
	}
	store := func(name string, limit int, window time.Duration) echomw.RateLimiterStore {
		if limit <= 0 {
			return nil
		}
		if rdb != nil {
			return redis.NewRateLimitStore(rdb, name, limit, window, log)
		}
		return middleware.MemoryRateLimitStore(limit, window)
	}
	return api.RateLimits{
		Default:  store("default", cfg.RateLimit.DefaultPerHour, time.Hour),
		Daily:    store("daily", cfg.RateLimit.DefaultPerDay, 24*time.Hour),
		Register: store("register", cfg.RateLimit.RegisterPerHour, time.Hour),
		Login:    store("login", cfg.RateLimit.LoginPerHour, time.Hour),
	}
}
