// Package main provides the entry point for the atena CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/atena/cmd/atena/commands"
	"github.com/crimson-sun/atena/internal/config"
	"github.com/crimson-sun/atena/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		providersFile = cfg.ProvidersFile
		previewLimit  = cfg.PreviewLimit
		logLevel      = cfg.LogLevel
	)

	rootCmd := &cobra.Command{
		Use:   "atena",
		Short: "Webletter export tool for disclosure-target records",
		Long: `Atena imports Shift_JIS monitoring exports, filters them by provider,
category, date, and product code, and writes webletter mailing CSVs plus
VIPN reconciliation maps.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logging.Init(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&providersFile, "providers", providersFile, "YAML provider master (empty = built-in)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level: debug, info, warn, error")

	rootCmd.AddCommand(commands.NewCountsCommand())
	rootCmd.AddCommand(commands.NewPreviewCommand(&previewLimit))
	rootCmd.AddCommand(commands.NewExportCommand(&providersFile))
	rootCmd.AddCommand(commands.NewReconcileCommand())
	rootCmd.AddCommand(commands.NewProvidersCommand(&providersFile))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
