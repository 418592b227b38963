// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bankparse/statement-extract/internal/common"
	"bankparse/statement-extract/internal/config"
	"bankparse/statement-extract/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logrus instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, populated in PersistentPreRun
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "statement-extract",
		Short: "Extract transactions from bank-statement PDF files.",
		Long: `statement-extract parses the transaction table out of bank-statement PDF
documents and returns normalized records (date, description, amount, balance),
either as a one-shot CLI conversion or behind an HTTP upload endpoint.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to statement-extract!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// GetLogger returns the configured logger behind the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
