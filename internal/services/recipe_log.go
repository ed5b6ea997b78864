package services

import "github.com/fuelhq/fuel/internal/models"

// IngredientOverride selects one template row for a logged session with the
// quantity actually used, which need not match the template quantity.
type IngredientOverride struct {
	IngredientID uint
	Quantity     float64
}

// IngredientsByID indexes template rows for override resolution.
func IngredientsByID(ingredients []models.RecipeIngredient) map[uint]models.RecipeIngredient {
	byID := make(map[uint]models.RecipeIngredient, len(ingredients))
	for _, ingredient := range ingredients {
		byID[ingredient.ID] = ingredient
	}
	return byID
}

// ComputeOverrideTotals sums override quantity × stored per-unit nutrients.
// Overrides define inclusion, so the checked flag is ignored here. The second
// return is the raw weight: the sum of every override quantity. Overrides
// referencing rows missing from the template contribute weight but no
// nutrients, matching how the session was entered.
func ComputeOverrideTotals(byID map[uint]models.RecipeIngredient, overrides []IngredientOverride) (Vector, float64) {
	totals := Vector{}
	rawWeight := 0.0
	for _, override := range overrides {
		rawWeight += override.Quantity
		ingredient, exists := byID[override.IngredientID]
		if !exists {
			continue
		}
		totals = totals.Add(ingredientPerUnitVector(ingredient).Scale(override.Quantity))
	}
	return totals, rawWeight
}

// PortionScaleFactor derives the fraction of the cooked batch that was eaten.
// A missing or non-positive weight on either side counts as unset, and an
// unset weight means the whole batch was eaten.
func PortionScaleFactor(cookedWeight *float64, portionWeight *float64) float64 {
	if cookedWeight == nil || *cookedWeight <= 0 {
		return 1.0
	}
	if portionWeight == nil || *portionWeight <= 0 {
		return 1.0
	}
	return *portionWeight / *cookedWeight
}

// BuildSnapshots copies the selected template rows into immutable per-meal
// snapshots carrying the session quantities.
func BuildSnapshots(byID map[uint]models.RecipeIngredient, overrides []IngredientOverride, mealID uint) []models.MealIngredient {
	snapshots := make([]models.MealIngredient, 0, len(overrides))
	for _, override := range overrides {
		ingredient, exists := byID[override.IngredientID]
		if !exists {
			continue
		}
		ingredientID := ingredient.ID
		snapshots = append(snapshots, models.MealIngredient{
			MealID:             mealID,
			RecipeIngredientID: &ingredientID,
			FoodName:           ingredient.FoodName,
			Quantity:           override.Quantity,
			Unit:               ingredient.Unit,
			CaloriesPerUnit:    ingredient.CaloriesPerUnit,
			ProteinPerUnit:     ingredient.ProteinPerUnit,
			CarbsPerUnit:       ingredient.CarbsPerUnit,
			FatPerUnit:         ingredient.FatPerUnit,
			FiberPerUnit:       ingredient.FiberPerUnit,
			UsdaFdcID:          ingredient.UsdaFdcID,
		})
	}
	return snapshots
}

type QuantityReset struct {
	IngredientID uint
	Quantity     float64
}

// RestorePlan reconciles a recipe template against a meal's snapshots:
// template rows absent from the snapshot set get unchecked (soft removal),
// snapshot rows whose template row survives get their quantity reset and
// re-checked, and snapshot rows whose template row is gone are re-inserted.
type RestorePlan struct {
	UncheckIDs     []uint
	QuantityResets []QuantityReset
	Inserts        []models.RecipeIngredient
}

func BuildRestorePlan(recipeID uint, current []models.RecipeIngredient, snapshots []models.MealIngredient) RestorePlan {
	currentByID := IngredientsByID(current)

	usedIDs := make(map[uint]struct{}, len(snapshots))
	for _, snapshot := range snapshots {
		if snapshot.RecipeIngredientID != nil {
			usedIDs[*snapshot.RecipeIngredientID] = struct{}{}
		}
	}

	plan := RestorePlan{}
	for _, ingredient := range current {
		if _, used := usedIDs[ingredient.ID]; !used {
			plan.UncheckIDs = append(plan.UncheckIDs, ingredient.ID)
		}
	}

	for _, snapshot := range snapshots {
		if snapshot.RecipeIngredientID != nil {
			if _, exists := currentByID[*snapshot.RecipeIngredientID]; exists {
				plan.QuantityResets = append(plan.QuantityResets, QuantityReset{
					IngredientID: *snapshot.RecipeIngredientID,
					Quantity:     snapshot.Quantity,
				})
				continue
			}
		}
		plan.Inserts = append(plan.Inserts, models.RecipeIngredient{
			RecipeID:        recipeID,
			FoodName:        snapshot.FoodName,
			Quantity:        snapshot.Quantity,
			Unit:            snapshot.Unit,
			Checked:         true,
			CaloriesPerUnit: snapshot.CaloriesPerUnit,
			ProteinPerUnit:  snapshot.ProteinPerUnit,
			CarbsPerUnit:    snapshot.CarbsPerUnit,
			FatPerUnit:      snapshot.FatPerUnit,
			FiberPerUnit:    snapshot.FiberPerUnit,
			UsdaFdcID:       snapshot.UsdaFdcID,
		})
	}

	return plan
}
