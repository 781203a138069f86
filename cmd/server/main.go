package main

import (
	"context"
	"log"

	"github.com/alkime/creatoros/internal/app"
	"github.com/alkime/creatoros/internal/config"
	"github.com/alkime/creatoros/internal/logger"
	"github.com/alkime/creatoros/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logger := logger.SetupLogger(cfg)

	logger.Info("Starting creatoros server",
		"env", cfg.Env,
		"port", cfg.Port,
		"provider", cfg.Provider(),
		"persistent_store", cfg.DatabaseURL != "",
	)

	ctx := context.Background()

	st, closeStore, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open store", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("Failed to close store", "error", err)
		}
	}()

	svc, err := app.NewService(ctx, cfg, st, logger)
	if err != nil {
		logger.Error("Failed to create content service", "error", err)
		log.Fatalf("Fatal: %v", err)
	}

	srv := server.New(cfg, logger, svc)
	if err := server.Run(srv); err != nil {
		logger.Error("Failed to start server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}
