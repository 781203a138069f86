package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alkime/creatoros/internal/app"
	"github.com/alkime/creatoros/internal/config"
	"github.com/alkime/creatoros/internal/keyring"
	"github.com/alkime/creatoros/internal/store/postgres"
)

// CLI defines the creatorctl command structure.
type CLI struct {
	Migrate MigrateCmd `cmd:"" help:"Apply database migrations to DATABASE_URL"`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration"`
	Plan    PlanCmd    `cmd:"" help:"Generate today's plan for a creator and print it"`
}

// MigrateCmd applies the embedded SQL migrations.
type MigrateCmd struct {
	DatabaseURL string `flag:"" env:"DATABASE_URL" required:"" help:"PostgreSQL connection string"`
}

// Run executes the migrate command.
func (c *MigrateCmd) Run(logger *slog.Logger) error {
	ctx := context.Background()

	st, err := postgres.Open(ctx, c.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Migrate(); err != nil {
		return err
	}

	fmt.Println("migrations applied")

	return nil
}

// ConfigCmd groups configuration-related subcommands.
type ConfigCmd struct {
	SetKey   SetKeyCmd   `cmd:"" help:"Store an API key in system keychain"`
	ListKeys ListKeysCmd `cmd:"" name:"list-keys" help:"Show which API keys are configured"`
}

// SetKeyCmd stores an API key in the system keychain.
type SetKeyCmd struct {
	Service string `arg:"" enum:"openai,anthropic,gemini" help:"Service name (openai, anthropic or gemini)"`
	Secret  string `arg:"" help:"API key value"`
}

// Run executes the set-key command.
func (c *SetKeyCmd) Run() error {
	if strings.TrimSpace(c.Secret) == "" {
		return errors.New("API key cannot be empty")
	}

	apiKey, err := keyring.APIKeyFromServiceName(c.Service)
	if err != nil {
		return fmt.Errorf("invalid service: %w", err)
	}

	if err := keyring.Set(apiKey, c.Secret); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	fmt.Printf("%s API key stored in keychain\n", c.Service)

	return nil
}

// ListKeysCmd shows which API keys are configured.
type ListKeysCmd struct{}

// Run executes the list-keys command.
//
//nolint:unparam // error return required by Kong interface
func (c *ListKeysCmd) Run() error {
	allSet := true

	for _, apiKey := range keyring.AllAPIKeys() {
		if keyring.IsSet(apiKey) {
			fmt.Printf("%s: configured\n", apiKey.DisplayName())
		} else {
			fmt.Printf("%s: not set\n", apiKey.DisplayName())
			allSet = false
		}
	}

	if !allSet {
		fmt.Println("\nRun 'creatorctl config set-key <service> <key>' to configure.")
	}

	return nil
}

// PlanCmd runs the daily-plan pipeline once for a creator.
type PlanCmd struct {
	UserID string `arg:"" help:"Creator profile id"`
}

// Run executes the plan command.
func (c *PlanCmd) Run(logger *slog.Logger) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required: the in-memory store holds no profiles")
	}

	st, closeStore, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	svc, err := app.NewService(ctx, cfg, st, logger)
	if err != nil {
		return err
	}

	plan, err := svc.GeneratePlan(ctx, c.UserID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(plan)
}

func main() {
	// Set up text-based logger for CLI output
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("creatorctl"),
		kong.Description("Operate the creatoros backend."),
		kong.UsageOnError(),
	)
	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
