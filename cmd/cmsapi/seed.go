package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/ulysse/cms-api/internal/core/service"
	"github.com/ulysse/cms-api/internal/infrastructure/config"
	"github.com/ulysse/cms-api/internal/infrastructure/security"
	"github.com/ulysse/cms-api/internal/infrastructure/storage"
)

func seedAdminCmd() *cli.Command {
	var email, password string
	return &cli.Command{
		Name:  "seed-admin",
		Usage: "Create an Admin account in the durable store (password from --password or stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "Email of the admin account",
				EnvVars:     []string{"ADMIN_EMAIL"},
				Destination: &email,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "password",
				Aliases:     []string{"p"},
				Usage:       "Password of the admin account; read from stdin when empty",
				EnvVars:     []string{"ADMIN_PASSWORD"},
				Destination: &password,
			},
		},
		Action: func(cctx *cli.Context) error {
			if password == "" {
				var err error
				if password, err = readPassword(cctx.App.Reader); err != nil {
					return err
				}
			}

			cfg, err := config.Load(cctx.Context)
			if err != nil {
				return err
			}
			log := initLogger(cfg)

			backend, err := storage.OpenDurable(cctx.Context, cfg)
			if err != nil {
				return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
			}
			defer closeStore(context.WithoutCancel(cctx.Context), backend, log)
			if backend.Name == storage.DriverMemory {
				log.Warn().Msg("memory store selected, the account will not outlive this command")
			}

			tokens := security.NewTokenIssuer([]byte(cfg.Auth.SecretKey), cfg.Auth.TokenTTL)
			svc := service.NewAuthService(backend.Users, security.NewBcryptHasher(cfg.Auth.BcryptCost), tokens)

			user, created, err := svc.EnsureAdmin(cctx.Context, email, password)
			if err != nil {
				return err
			}
			if !created {
				log.Info().Str("email", user.Email).Str("role", user.Role).Msg("account already exists, nothing to do")
				return nil
			}
			log.Info().Str("email", user.Email).Str("id", user.ID).Msg("admin account created")
			return nil
		},
	}
}

func readPassword(r io.Reader) (string, error) {
	if r == nil {
		r = os.Stdin
	}
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errors.New("missing password on stdin")
	}
	password := strings.TrimSpace(sc.Text())
	if password == "" {
		return "", errors.New("missing password on stdin")
	}
	return password, nil
}

type storeCloser interface {
	Close(ctx context.Context) error
}

func closeStore(ctx context.Context, store storeCloser, log zerolog.Logger) {
	if err := store.Close(ctx); err != nil {
		log.Error().Err(err).Msg("close store")
	}
}
