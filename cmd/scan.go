package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lrendell/fitimport/internal/scanner"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [text]",
	Short: "Find every catalog exercise mentioned in a text block",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(text string) error {
	_, holder, _, err := loadEnv()
	if err != nil {
		return err
	}

	mentions := scanner.FindAllMentions(holder.Current(), text)
	fmt.Printf("Found %d mention(s).\n", len(mentions))
	for _, m := range mentions {
		fmt.Printf("  [%d:%d] %s -> %s\n", m.Start, m.End, m.Name, m.Exercise.Name)
	}
	return nil
}
