package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/crack-social/crack-cli/internal/buildinfo"
	"github.com/crack-social/crack-cli/internal/client/cli"
	"github.com/crack-social/crack-cli/internal/client/config"
	"github.com/crack-social/crack-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
