package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/luna/internal/config"
	"github.com/terraincognita07/luna/internal/logger"
)

// Execute runs the luna command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. Each subcommand reads the
// configuration loaded by the persistent pre-run hook.
func NewRootCommand() *cobra.Command {
	var dbPath string
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:           "luna",
		Short:         "Menstrual cycle tracker",
		Long:          `luna logs periods, symptoms and moods, predicts upcoming cycles and serves a JSON API.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if dbPath != "" {
				loaded.DBPath = dbPath
			}
			*cfg = *loaded

			logger.InitWithOutput(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Environment)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database (default: $DB_PATH or data/luna.db)")

	rootCmd.AddCommand(
		newServeCommand(cfg),
		newStatsCommand(cfg),
		newExportCommand(cfg),
		newClearCommand(cfg),
		newVersionCommand(),
	)
	return rootCmd
}
