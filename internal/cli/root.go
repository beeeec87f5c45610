// Package cli holds the portal's cobra commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"recharge-portal/config"
	"recharge-portal/internal/logger"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "portal",
		Short:         "Mobile recharge and bill payment portal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCommand(),
		newSeedCommand(),
		newMigrateCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// bootstrap loads config, installs the logger and checks the database settings.
func bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadEnv()
	if err != nil {
		return nil, nil, err
	}
	log := logger.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err := cfg.RequireDatabase(); err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		slog.Warn("failed to close database", "error", err)
	}
}

func wrap(step string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", step, err)
}
