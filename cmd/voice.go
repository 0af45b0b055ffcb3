package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lrendell/fitimport/internal/voice"
)

var knownExercise string

// voiceCmd represents the voice command
var voiceCmd = &cobra.Command{
	Use:   "voice [transcript]",
	Short: "Parse sets and an exercise name from a spoken transcript",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVoice(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(voiceCmd)

	voiceCmd.Flags().StringVarP(
		&knownExercise,
		"exercise",
		"e",
		"",
		"exercise name when already known (skips extraction)",
	)
}

func runVoice(transcript string) error {
	cfg, _, engine, err := loadEnv()
	if err != nil {
		return err
	}

	res := voice.Parse(engine, transcript, voice.Options{
		KnownExercise:     knownExercise,
		Threshold:         cfg.VoiceThreshold,
		KeepDuplicateSets: cfg.KeepDuplicateSets,
	})

	if res.Match != nil {
		fmt.Printf("Exercise: %s (score %.2f)\n", res.Match.Exercise.Name, res.Match.Score)
	} else if res.ExerciseName != "" {
		fmt.Printf("Exercise: %q (unmatched)\n", res.ExerciseName)
	} else {
		fmt.Println("Exercise: none detected")
	}

	fmt.Printf("Confidence: %s\n", res.Confidence)
	for _, s := range res.Sets {
		fmt.Printf("  set %d: %.4g x %d\n", s.Number, s.Weight, s.Reps)
	}
	return nil
}
