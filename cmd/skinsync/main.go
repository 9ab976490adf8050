package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/skinsync/skinsync/internal/cli"
	"github.com/skinsync/skinsync/internal/config"
	"github.com/skinsync/skinsync/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

func buildLogger(cfg *config.Config) (logging.Logger, error) {
	if cfg.LogBackend == "zap" {
		return logging.NewZapProduction()
	}
	return logging.NewTextLogger(os.Stderr, slog.LevelInfo), nil
}
