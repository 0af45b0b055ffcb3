package importer

import (
	"math"

	"github.com/google/uuid"
)

// RecipeResult bundles the canonical recipe with its validation outcome.
type RecipeResult struct {
	Recipe     ImportedRecipe
	Validation ValidationResult
}

// NormalizeRecipe converts an AI-authored recipe into a canonical record.
// Ingredient macros given as absolute quantity-scaled values are converted to
// per-100g density so quantity edits rescale cleanly.
func (n *Normalizer) NormalizeRecipe(in RecipeInput) RecipeResult {
	res := RecipeResult{Validation: validateRecipe(in)}

	recipe := ImportedRecipe{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Servings:     in.Servings,
		Instructions: in.Instructions,
		Nutrition:    in.Nutrition,
		Confidence:   clamp01(in.Confidence),
	}
	if recipe.Servings <= 0 {
		recipe.Servings = 1
	}

	for _, ing := range in.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, normalizeIngredient(ing))
	}

	res.Recipe = recipe
	return res
}

// normalizeIngredient converts absolute macro totals into per-100g density:
// density = total / quantity * 100. A zero quantity leaves the values as
// given; there is nothing to scale by.
func normalizeIngredient(in IngredientInput) Ingredient {
	out := Ingredient{
		Name:     in.Name,
		Quantity: in.Quantity,
		Unit:     in.Unit,
	}

	if in.Quantity <= 0 {
		out.Per100g = Nutrition{Calories: in.Calories, Protein: in.Protein, Carbs: in.Carbs, Fat: in.Fat}
		return out
	}

	factor := 100 / in.Quantity
	out.Per100g = Nutrition{
		Calories: round2(in.Calories * factor),
		Protein:  round2(in.Protein * factor),
		Carbs:    round2(in.Carbs * factor),
		Fat:      round2(in.Fat * factor),
	}
	return out
}

// ScaledNutrition recomputes absolute macros for an ingredient at its current
// quantity, inverting the per-100g normalization.
func (i Ingredient) ScaledNutrition() Nutrition {
	factor := i.Quantity / 100
	return Nutrition{
		Calories: round2(i.Per100g.Calories * factor),
		Protein:  round2(i.Per100g.Protein * factor),
		Carbs:    round2(i.Per100g.Carbs * factor),
		Fat:      round2(i.Per100g.Fat * factor),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
