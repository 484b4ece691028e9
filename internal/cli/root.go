// Package cli holds the dietlog command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vladimiradmaev/dietlog/internal/config"
	"github.com/vladimiradmaev/dietlog/internal/database"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	"github.com/vladimiradmaev/dietlog/internal/logger"
	"github.com/vladimiradmaev/dietlog/internal/repository"
	"github.com/vladimiradmaev/dietlog/internal/repository/mongorepo"
)

var rootCmd = &cobra.Command{
	Use:           "dietlog",
	Short:         "dietlog tracks food, water and weight against daily targets",
	Long:          "dietlog serves the diet log HTTP API and, when configured, the Telegram bot. Without a subcommand it runs serve.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and installs the configured logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return cfg, nil
}

// openStores connects to the store selected by STORE_DRIVER.
func openStores(ctx context.Context, cfg *config.Config) (*domain.Stores, error) {
	if cfg.Store.Driver == config.DriverMongo {
		return mongorepo.New(ctx, cfg.Mongo)
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	return repository.NewStores(db), nil
}
