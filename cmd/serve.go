package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lrendell/fitimport/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose matching and import over a JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, holder, _, err := loadEnv()
	if err != nil {
		return err
	}
	return server.New(cfg, holder).Run()
}
