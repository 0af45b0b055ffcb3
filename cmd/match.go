package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match [name]",
	Short: "Resolve a free-form exercise name against the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(name string) error {
	cfg, _, engine, err := loadEnv()
	if err != nil {
		return err
	}

	res := engine.FindBestMatch(name, cfg.AIThreshold)
	if res == nil {
		fmt.Printf("No match for %q (threshold %.2f).\n", name, cfg.AIThreshold)
		return nil
	}

	fmt.Printf("%q -> %q\n", name, res.Exercise.Name)
	fmt.Printf("score=%.2f tier=%s equipment=%s\n", res.Score, res.Tier, res.Exercise.Equipment)
	return nil
}
