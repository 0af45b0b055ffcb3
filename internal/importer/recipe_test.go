package importer

import (
	"strings"
	"testing"
)

func validRecipeInput() RecipeInput {
	return RecipeInput{
		Name:     "Chicken Rice Bowl",
		Servings: 2,
		Ingredients: []IngredientInput{
			{Name: "chicken breast", Quantity: 200, Unit: "g", Calories: 330, Protein: 62, Carbs: 0, Fat: 7},
			{Name: "rice", Quantity: 150, Unit: "g", Calories: 195, Protein: 4, Carbs: 42, Fat: 0.5},
		},
		Instructions: []string{"cook rice", "grill chicken", "combine"},
		Nutrition:    Nutrition{Calories: 525, Protein: 66, Carbs: 42, Fat: 7.5},
		Confidence:   0.9,
	}
}

func TestNormalizeRecipe(t *testing.T) {
	n := testNormalizer()

	t.Run("converts macros to per-100g density", func(t *testing.T) {
		res := n.NormalizeRecipe(validRecipeInput())
		if !res.Validation.Valid {
			t.Fatalf("validation failed: %v", res.Validation.Errors)
		}

		chicken := res.Recipe.Ingredients[0]
		if chicken.Per100g.Calories != 165 {
			t.Errorf("calories per 100g = %v", chicken.Per100g.Calories)
		}
		if chicken.Per100g.Protein != 31 {
			t.Errorf("protein per 100g = %v", chicken.Per100g.Protein)
		}
	})

	t.Run("density round-trips to the original total", func(t *testing.T) {
		res := n.NormalizeRecipe(validRecipeInput())
		got := res.Recipe.Ingredients[0].ScaledNutrition()
		if got.Calories != 330 {
			t.Errorf("recomputed calories = %v, want 330", got.Calories)
		}
	})

	t.Run("zero quantity left unscaled", func(t *testing.T) {
		in := validRecipeInput()
		in.Ingredients[0].Quantity = 0
		res := n.NormalizeRecipe(in)
		if res.Recipe.Ingredients[0].Per100g.Calories != 330 {
			t.Errorf("got %v", res.Recipe.Ingredients[0].Per100g.Calories)
		}
	})

	t.Run("servings default to one", func(t *testing.T) {
		in := validRecipeInput()
		in.Servings = 0
		if res := n.NormalizeRecipe(in); res.Recipe.Servings != 1 {
			t.Errorf("servings = %d", res.Recipe.Servings)
		}
	})

	t.Run("confidence clamped to [0,1]", func(t *testing.T) {
		in := validRecipeInput()
		in.Confidence = 1.7
		if res := n.NormalizeRecipe(in); res.Recipe.Confidence != 1 {
			t.Errorf("confidence = %v", res.Recipe.Confidence)
		}
	})
}

func TestValidateRecipe(t *testing.T) {
	n := testNormalizer()

	t.Run("missing structural fields", func(t *testing.T) {
		res := n.NormalizeRecipe(RecipeInput{})
		if res.Validation.Valid {
			t.Fatal("expected failure")
		}
		if len(res.Validation.Errors) != 3 {
			t.Errorf("errors = %v", res.Validation.Errors)
		}
	})

	t.Run("unrealistic calories flagged", func(t *testing.T) {
		in := validRecipeInput()
		in.Nutrition.Calories = 6000
		res := n.NormalizeRecipe(in)
		if res.Validation.Valid {
			t.Fatal("expected failure")
		}
		found := false
		for _, e := range res.Validation.Errors {
			if strings.Contains(e, "calories") {
				found = true
			}
		}
		if !found {
			t.Errorf("no calories reason in %v", res.Validation.Errors)
		}
	})

	t.Run("unrealistic protein flagged", func(t *testing.T) {
		in := validRecipeInput()
		in.Nutrition.Protein = 300
		if res := n.NormalizeRecipe(in); res.Validation.Valid {
			t.Fatal("expected failure")
		}
	})

	t.Run("recipe still returned on failure", func(t *testing.T) {
		in := validRecipeInput()
		in.Instructions = nil
		res := n.NormalizeRecipe(in)
		if res.Validation.Valid {
			t.Fatal("expected failure")
		}
		if len(res.Recipe.Ingredients) != 2 {
			t.Error("expected partial recipe")
		}
	})
}
