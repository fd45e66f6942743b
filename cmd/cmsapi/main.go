// Command cmsapi runs the site backend and its maintenance tasks.
//
//	@title						Ulysse CMS API
//	@version					1.0
//	@description				Content, contact and authentication backend for the advisory site.
//	@BasePath					/api
//	@securityDefinitions.apikey	AccessToken
//	@in							header
//	@name						x-access-token
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/ulysse/cms-api/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "cmsapi",
		Usage: "Content, contact and auth backend for the advisory site",
		Commands: []*cli.Command{
			serveCmd(),
			seedAdminCmd(),
		},
		DefaultCommand: "serve",
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := app.RunContext(ctx, os.Args); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("cmsapi failed")
		os.Exit(1)
	}
}
