package cmd

import (
	"context"
	"log/slog"

	"github.com/solotto/draw-engine/internal/config"
	"github.com/solotto/draw-engine/pkg/logger"
	"github.com/solotto/draw-engine/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:  "solotto",
	Long: `Solotto lottery draw and settlement engine`,
}

func init() {
	var configFile string

	// Add global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")
	flags.String("database", "postgres", "ledger storage backend, E.g. `postgres` or `memory`")

	// Bind flags to configuration
	config.BindPFlag("database", flags.Lookup("database"))

	// Initialize configuration and logger on start command
	cobra.OnInitialize(func() {
		conf := config.Parse(configFile)

		if err := logger.Init(conf.Logger); err != nil {
			logger.Panic("Failed to initialize logger", slogx.Error(err), slog.Any("config", conf.Logger))
		}
	})
}

func Execute(ctx context.Context) {
	// Register sub-commands and handlers
	rootCmd.AddCommand(
		NewRunCommand(),
		NewDrawCommand(),
		NewMigrateCommand(),
		NewVersionCommand(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Panic("Failed to execute root command", slogx.Error(err))
	}
}
