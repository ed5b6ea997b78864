package services

import (
	"testing"

	"github.com/fuelhq/fuel/internal/models"
)

func TestComputeTotalsEmptySetIsZero(t *testing.T) {
	totals := ComputeTotals(nil)
	if totals != (Vector{}) {
		t.Fatalf("expected zero totals, got %#v", totals)
	}
}

func TestComputeTotalsIgnoresUncheckedRows(t *testing.T) {
	ingredients := []models.RecipeIngredient{
		{Quantity: 400, Checked: true, CaloriesPerUnit: 1.2, ProteinPerUnit: 0.25},
		{Quantity: 999, Checked: false, CaloriesPerUnit: 5, ProteinPerUnit: 5},
	}

	totals := ComputeTotals(ingredients)
	if !almostEqual(totals.Calories, 480) {
		t.Fatalf("expected 480 total calories, got %v", totals.Calories)
	}
	if !almostEqual(totals.Protein, 100) {
		t.Fatalf("expected 100 total protein, got %v", totals.Protein)
	}
}

func TestComputeTotalsSumsCheckedRowsExactly(t *testing.T) {
	ingredients := []models.RecipeIngredient{
		{Quantity: 2, Checked: true, CaloriesPerUnit: 52, CarbsPerUnit: 14, FiberPerUnit: 2.5},
		{Quantity: 0.5, Checked: true, CaloriesPerUnit: 884, FatPerUnit: 100},
	}

	totals := ComputeTotals(ingredients)
	if !almostEqual(totals.Calories, 546) {
		t.Fatalf("expected 546 total calories, got %v", totals.Calories)
	}
	if !almostEqual(totals.Carbs, 28) {
		t.Fatalf("expected 28 total carbs, got %v", totals.Carbs)
	}
	if !almostEqual(totals.Fat, 50) {
		t.Fatalf("expected 50 total fat, got %v", totals.Fat)
	}
	if !almostEqual(totals.Fiber, 5) {
		t.Fatalf("expected 5 total fiber, got %v", totals.Fiber)
	}
}
