// Package root contains the root command for the application
package root

import (
	"fjacquet/sales-csv/internal/config"
	"fjacquet/sales-csv/internal/enrichment"
	"fjacquet/sales-csv/internal/fileutils"
	"fjacquet/sales-csv/internal/logging"
	"fjacquet/sales-csv/internal/store"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the application configuration, populated before any command runs
	Cfg *config.Config

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sales-csv",
		Short: "A CLI tool to analyze pipe-delimited sales data and enrich it with catalog metadata.",
		Long: `sales-csv ingests a pipe-delimited sales transaction file, validates and
optionally filters the records, computes revenue and performance aggregates,
enriches transactions with product catalog metadata and emits a formatted
text report plus an enriched data file.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to sales-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			logger := config.ConfigureLogging()
			Log = logging.NewLogrusAdapterFromLogger(logger)

			// Set the configured logger on packages with package-level loggers
			fileutils.SetLogger(logger)
			store.SetLogger(logger)

			Cfg = config.GetConfig()
			if Cfg.CSV.Delimiter != "" {
				enrichment.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "data/sales_data.txt", "Input sales data file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
