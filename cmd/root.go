package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lrendell/fitimport/internal/catalog"
	"github.com/lrendell/fitimport/internal/config"
	"github.com/lrendell/fitimport/internal/match"
)

var (
	cfgFile     string
	catalogFile string
)

var rootCmd = &cobra.Command{
	Use:   "fitimport",
	Short: "Convert free-form workout and recipe text into catalog-matched records",
	Long: `fitimport ingests AI-generated JSON, voice transcripts and chat text
describing workouts and recipes, and resolves every exercise against a fixed
exercise catalog.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&cfgFile,
		"config",
		"c",
		"",
		"path to config file",
	)

	rootCmd.PersistentFlags().StringVarP(
		&catalogFile,
		"catalog",
		"l",
		"",
		"path to exercise catalog JSON",
	)
	rootCmd.MarkPersistentFlagRequired("catalog")
}

// loadEnv reads the config and catalog and builds the match engine every
// subcommand needs.
func loadEnv() (config.Config, *catalog.Holder, *match.Engine, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return cfg, nil, nil, fmt.Errorf("load config: %w", err)
		}
	}

	entries, err := catalog.LoadFile(catalogFile)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	holder := catalog.NewHolder(entries)
	return cfg, holder, match.NewEngine(holder.Current()), nil
}
