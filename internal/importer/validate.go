package importer

import "fmt"

// Nutrition sanity limits per serving. Values past these are flagged, not
// clamped.
const (
	maxCaloriesPerServing = 5000
	maxProteinPerServing  = 200
)

// ValidationResult carries structural failures as values. Nothing in this
// package panics or returns an error for bad content; the caller gets the
// partial record plus the reasons it is not valid.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

func validOK() ValidationResult {
	return ValidationResult{Valid: true}
}

func (v *ValidationResult) addf(format string, args ...any) {
	v.Valid = false
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// validateWorkout checks the structural requirements of a workout input.
func validateWorkout(in WorkoutInput) ValidationResult {
	v := validOK()
	if in.Name == "" {
		v.addf("workout has no name")
	}
	if len(in.Days) == 0 {
		v.addf("workout has no days")
	}
	for _, d := range in.Days {
		if len(d.Exercises) == 0 {
			v.addf("day %d has no exercises", d.DayNumber)
		}
	}
	return v
}

// validateRecipe checks structural requirements and nutrition sanity.
func validateRecipe(in RecipeInput) ValidationResult {
	v := validOK()
	if in.Name == "" {
		v.addf("recipe has no name")
	}
	if len(in.Ingredients) == 0 {
		v.addf("recipe has no ingredients")
	}
	if len(in.Instructions) == 0 {
		v.addf("recipe has no instructions")
	}
	if in.Nutrition.Calories > maxCaloriesPerServing {
		v.addf("unrealistic calories per serving: %.0f (limit %d)", in.Nutrition.Calories, maxCaloriesPerServing)
	}
	if in.Nutrition.Protein > maxProteinPerServing {
		v.addf("unrealistic protein per serving: %.0f (limit %d)", in.Nutrition.Protein, maxProteinPerServing)
	}
	return v
}
