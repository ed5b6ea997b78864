package services

import (
	"testing"

	"github.com/fuelhq/fuel/internal/models"
)

func floatPtr(value float64) *float64 {
	return &value
}

func TestRescalePortionHalvesNutrients(t *testing.T) {
	meal := models.Meal{
		Calories:          300,
		ProteinG:          20,
		CarbsG:            40,
		FatG:              10,
		FiberG:            4,
		TotalCookedWeight: floatPtr(1000),
		PortionWeight:     floatPtr(200),
	}

	updated := RescalePortion(meal, 100)
	if updated.Calories != 150 {
		t.Fatalf("expected 150 calories, got %d", updated.Calories)
	}
	if !almostEqual(updated.ProteinG, 10) {
		t.Fatalf("expected protein 10, got %v", updated.ProteinG)
	}
	if !almostEqual(updated.FiberG, 2) {
		t.Fatalf("expected fiber 2, got %v", updated.FiberG)
	}
	if updated.PortionWeight == nil || *updated.PortionWeight != 100 {
		t.Fatalf("expected portion weight 100, got %v", updated.PortionWeight)
	}
}

func TestRescalePortionSameTargetKeepsNutrients(t *testing.T) {
	meal := models.Meal{
		Calories:          480,
		ProteinG:          32.5,
		CarbsG:            60.1,
		FatG:              12.4,
		FiberG:            5.5,
		TotalCookedWeight: floatPtr(800),
		PortionWeight:     floatPtr(200),
	}

	updated := RescalePortion(meal, 200)
	if updated.Calories != meal.Calories {
		t.Fatalf("expected unchanged calories, got %d", updated.Calories)
	}
	if !almostEqual(updated.ProteinG, meal.ProteinG) || !almostEqual(updated.CarbsG, meal.CarbsG) {
		t.Fatalf("expected unchanged macros, got %#v", updated)
	}
}

func TestRescalePortionWithoutCookedWeightOnlyUpdatesPortion(t *testing.T) {
	tests := []struct {
		name string
		meal models.Meal
	}{
		{name: "cooked weight unset", meal: models.Meal{Calories: 250, ProteinG: 18, PortionWeight: floatPtr(150)}},
		{name: "cooked weight zero", meal: models.Meal{Calories: 250, ProteinG: 18, TotalCookedWeight: floatPtr(0), PortionWeight: floatPtr(150)}},
		{name: "old portion zero", meal: models.Meal{Calories: 250, ProteinG: 18, TotalCookedWeight: floatPtr(500), PortionWeight: floatPtr(0)}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			updated := RescalePortion(testCase.meal, 300)
			if updated.Calories != testCase.meal.Calories || !almostEqual(updated.ProteinG, testCase.meal.ProteinG) {
				t.Fatalf("expected nutrients untouched, got %#v", updated)
			}
			if updated.PortionWeight == nil || *updated.PortionWeight != 300 {
				t.Fatalf("expected portion weight 300, got %v", updated.PortionWeight)
			}
		})
	}
}

func TestRescalePortionWithoutOldPortionUsesFullBatch(t *testing.T) {
	meal := models.Meal{
		Calories:          1000,
		ProteinG:          80,
		TotalCookedWeight: floatPtr(1000),
	}

	updated := RescalePortion(meal, 250)
	if updated.Calories != 250 {
		t.Fatalf("expected 250 calories for a quarter portion, got %d", updated.Calories)
	}
	if !almostEqual(updated.ProteinG, 20) {
		t.Fatalf("expected protein 20, got %v", updated.ProteinG)
	}
}

func TestRescalePortionCaloriesFloorAtZero(t *testing.T) {
	meal := models.Meal{
		Calories:          0,
		ProteinG:          1.5,
		TotalCookedWeight: floatPtr(400),
		PortionWeight:     floatPtr(100),
	}

	updated := RescalePortion(meal, 50)
	if updated.Calories != 0 {
		t.Fatalf("expected calories to stay at 0, got %d", updated.Calories)
	}
}
