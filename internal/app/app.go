// Package app wires configuration into the store, generation client and
// content service shared by the server and the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alkime/creatoros/internal/config"
	"github.com/alkime/creatoros/internal/content"
	"github.com/alkime/creatoros/internal/generation"
	"github.com/alkime/creatoros/internal/store"
	"github.com/alkime/creatoros/internal/store/postgres"
)

// OpenStore returns the Postgres store when DATABASE_URL is set, migrating it
// first when MIGRATE_ON_START is on, and the in-memory store otherwise. The
// returned close function is never nil.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, func() error, error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, using in-memory store")
		return store.NewMemory(), func() error { return nil }, nil
	}

	pg, err := postgres.Open(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.MigrateOnStart {
		if err := pg.Migrate(); err != nil {
			_ = pg.Close()
			return nil, nil, err
		}
	}

	return pg, pg.Close, nil
}

// NewService builds the generation client from cfg and the content service on
// top of st.
func NewService(ctx context.Context, cfg *config.Config, st store.Store, logger *slog.Logger) (*content.Service, error) {
	genCfg := cfg.Generation()

	client, err := generation.New(ctx, genCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	logger.Info("Configured generation client",
		"provider", genCfg.Provider,
		"model", genCfg.Model,
		"timeout", genCfg.Timeout.String(),
	)

	return content.NewService(st, client, genCfg.Model, logger), nil
}
