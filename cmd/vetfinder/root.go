package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vetfinder-hk/vetfinder/internal/config"
	"github.com/vetfinder-hk/vetfinder/internal/observability"
	"github.com/vetfinder-hk/vetfinder/internal/store"
)

var (
	cfgFile  string
	language string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "vetfinder",
	Short: "Hong Kong vet finder - search and AI-assisted recommendations",
	Long: `vetfinder searches the register of Hong Kong veterinarians, ranks them
against free-text descriptions of your pet's situation, and optionally asks an
AI assistant to interpret the description and reply conversationally.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		if language != "en" && language != "tc" {
			return fmt.Errorf("unsupported language %q (use en or tc)", language)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&language, "lang", "l", "en", "display language (en or tc)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadEnvironment builds the shared pieces every subcommand needs: config,
// a quiet console logger and the register store.
func loadEnvironment() (*config.Config, *observability.Logger, *store.Store, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       "warn",
		Format:      "console",
		ServiceName: cfg.Observability.ServiceName,
	})

	var st *store.Store
	switch cfg.Dataset.Source {
	case "json":
		st, err = store.LoadJSONFile(cfg.Dataset.Path)
	case "sqlite":
		st, err = store.LoadSQLite(cfg.Dataset.Path)
	default:
		st, err = store.LoadEmbedded()
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load vet register: %w", err)
	}

	return cfg, logger, st, nil
}
