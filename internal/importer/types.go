// Package importer turns AI-authored workout and recipe JSON into canonical
// records, resolving exercise names through the match engine.
package importer

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/lrendell/fitimport/internal/match"
)

// FlexString absorbs fields the AI backend emits as either a JSON string or a
// bare number ("reps": "8-12" vs "reps": 10).
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
		return nil
	}
	// Unparseable values degrade to empty; defaults fill in later.
	*f = ""
	return nil
}

func (f FlexString) String() string {
	return strings.TrimSpace(string(f))
}

// WorkoutInput is the raw workout shape produced by the AI backend.
type WorkoutInput struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	IsStandalone *bool      `json:"isStandalone"`
	Days         []DayInput `json:"days"`
	Confidence   float64    `json:"confidence"`
}

type DayInput struct {
	DayNumber    int             `json:"dayNumber"`
	Name         string          `json:"name"`
	MuscleGroups []string        `json:"muscleGroups"`
	Exercises    []ExerciseInput `json:"exercises"`
}

type ExerciseInput struct {
	Name       string     `json:"name"`
	Equipment  string     `json:"equipment"`
	SetsCount  int        `json:"setsCount"`
	Sets       []SetInput `json:"sets"`
	Reps       FlexString `json:"reps"`
	Weight     FlexString `json:"weight"`
	RestPeriod string     `json:"restPeriod"`
	Notes      string     `json:"notes"`
}

type SetInput struct {
	Reps   FlexString `json:"reps"`
	Weight FlexString `json:"weight"`
}

// Set is one canonical planned set. Reps may be a range ("8-12").
type Set struct {
	Number int    `json:"setNumber"`
	Reps   string `json:"reps"`
	Weight string `json:"weight"`
}

// ImportedExercise is an exercise annotated with its catalog resolution.
type ImportedExercise struct {
	OriginalName          string
	Match                 *match.Result
	Equipment             string
	MuscleGroups          []string
	Sets                  []Set
	RestPeriod            string
	Notes                 string
	IsCustom              bool
	NeedsVariantSelection bool
}

// ImportedDay is one training day after normalization.
type ImportedDay struct {
	DayNumber    int
	Name         string
	MuscleGroups []string
	Exercises    []ImportedExercise
}

// WorkoutKind discriminates the two workout shapes. It is resolved once
// during normalization; consumers never re-inspect input flags.
type WorkoutKind string

const (
	KindStandalone WorkoutKind = "standalone"
	KindProgram    WorkoutKind = "program"
)

// ImportedWorkout is the canonical output record. Day is set for standalone
// workouts, Days for multi-day programs; never both.
type ImportedWorkout struct {
	ID         string
	Name       string
	Kind       WorkoutKind
	Day        *ImportedDay
	Days       []ImportedDay
	Confidence float64
}

// MatchedExercise is one match-report line for a resolved exercise.
type MatchedExercise struct {
	OriginalName string
	CatalogName  string
	Score        float64
	Tier         match.Tier
}

// MatchReport summarizes name resolution across an import so the caller can
// prompt for manual disambiguation.
type MatchReport struct {
	Matched   []MatchedExercise
	Unmatched []string
}

// RecipeInput is the raw recipe shape produced by the AI backend.
type RecipeInput struct {
	Name         string            `json:"name"`
	Servings     int               `json:"servings"`
	Ingredients  []IngredientInput `json:"ingredients"`
	Instructions []string          `json:"instructions"`
	Nutrition    Nutrition         `json:"nutrition"`
	Confidence   float64           `json:"confidence"`
}

type IngredientInput struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Nutrition is a macro breakdown, absolute or per-100g depending on context.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Ingredient is normalized to per-100g density plus a gram quantity, so a
// later quantity change rescales consistently.
type Ingredient struct {
	Name     string
	Quantity float64 // grams
	Unit     string
	Per100g  Nutrition
}

// ImportedRecipe is the canonical recipe record.
type ImportedRecipe struct {
	ID           string
	Name         string
	Servings     int
	Ingredients  []Ingredient
	Instructions []string
	Nutrition    Nutrition
	Confidence   float64
}
