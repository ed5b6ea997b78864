package services

import "github.com/fuelhq/fuel/internal/models"

// RescalePortion proportionally rescales a logged meal's nutrients when the
// eaten portion weight changes. The ratio compares the new and old portion
// scale relative to the total cooked batch weight. When the cooked weight is
// unknown (or the old scale degenerates to zero) only the portion weight is
// updated. Calories are floored at zero after rounding; the macro fields are
// rounded to one decimal without a floor.
func RescalePortion(meal models.Meal, newPortionWeight float64) models.Meal {
	updated := meal

	if meal.TotalCookedWeight == nil || *meal.TotalCookedWeight <= 0 {
		updated.PortionWeight = &newPortionWeight
		return updated
	}
	cookedWeight := *meal.TotalCookedWeight

	oldScale := 1.0
	if meal.PortionWeight != nil {
		oldScale = *meal.PortionWeight / cookedWeight
	}
	if oldScale == 0 {
		updated.PortionWeight = &newPortionWeight
		return updated
	}

	newScale := newPortionWeight / cookedWeight
	ratio := newScale / oldScale

	calories := RoundCalories(float64(meal.Calories) * ratio)
	if calories < 0 {
		calories = 0
	}
	updated.Calories = calories
	updated.ProteinG = RoundMacro(meal.ProteinG * ratio)
	updated.CarbsG = RoundMacro(meal.CarbsG * ratio)
	updated.FatG = RoundMacro(meal.FatG * ratio)
	updated.FiberG = RoundMacro(meal.FiberG * ratio)
	updated.PortionWeight = &newPortionWeight
	return updated
}
