package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lrendell/fitimport/internal/importer"
)

var asRecipe bool

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [file.json]",
	Short: "Normalize an AI-authored workout or recipe JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(args[0])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVarP(
		&asRecipe,
		"recipe",
		"r",
		false,
		"treat the input as a recipe instead of a workout",
	)
}

func runImport(path string) error {
	cfg, _, engine, err := loadEnv()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input %s: %w", path, err)
	}

	norm := importer.NewNormalizer(engine, cfg.AIThreshold)

	if asRecipe {
		var in importer.RecipeInput
		if err := json.Unmarshal(data, &in); err != nil {
			return fmt.Errorf("decode recipe: %w", err)
		}
		res := norm.NormalizeRecipe(in)
		printValidation(res.Validation)
		fmt.Printf("Recipe %q: %d ingredient(s), %d instruction(s).\n",
			res.Recipe.Name, len(res.Recipe.Ingredients), len(res.Recipe.Instructions))
		return nil
	}

	var in importer.WorkoutInput
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("decode workout: %w", err)
	}

	res := norm.NormalizeWorkout(in)
	printValidation(res.Validation)

	fmt.Printf("Workout %q (%s).\n", res.Workout.Name, res.Workout.Kind)
	fmt.Printf("Matched %d exercise(s), %d unmatched.\n", len(res.Report.Matched), len(res.Report.Unmatched))
	for _, m := range res.Report.Matched {
		fmt.Printf("  %q -> %q (%.2f, %s)\n", m.OriginalName, m.CatalogName, m.Score, m.Tier)
	}
	for _, u := range res.Report.Unmatched {
		fmt.Printf("  %q -> custom\n", u)
	}
	return nil
}

func printValidation(v importer.ValidationResult) {
	if v.Valid {
		return
	}
	fmt.Printf("Validation failed with %d issue(s):\n", len(v.Errors))
	for _, e := range v.Errors {
		fmt.Printf("  - %s\n", e)
	}
}
