package services

import "github.com/fuelhq/fuel/internal/models"

func ingredientPerUnitVector(ingredient models.RecipeIngredient) Vector {
	return Vector{
		Calories: ingredient.CaloriesPerUnit,
		Protein:  ingredient.ProteinPerUnit,
		Carbs:    ingredient.CarbsPerUnit,
		Fat:      ingredient.FatPerUnit,
		Fiber:    ingredient.FiberPerUnit,
	}
}

// ComputeTotals sums quantity × per-unit nutrients over the checked template
// rows. Totals stay exact; rounding happens only when a total becomes a meal.
func ComputeTotals(ingredients []models.RecipeIngredient) Vector {
	totals := Vector{}
	for _, ingredient := range ingredients {
		if !ingredient.Checked {
			continue
		}
		totals = totals.Add(ingredientPerUnitVector(ingredient).Scale(ingredient.Quantity))
	}
	return totals
}
