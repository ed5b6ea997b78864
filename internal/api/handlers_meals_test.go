package api

import (
	"net/http"
	"testing"
)

func TestMealsRequireAuthentication(t *testing.T) {
	ta := newTestApp(t)

	response := ta.request(t, http.MethodGet, "/meals/day/2026-03-01", nil, "")
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", response.StatusCode)
	}

	response = ta.request(t, http.MethodGet, "/meals/day/2026-03-01", nil, "bogus-token")
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown token, got %d", response.StatusCode)
	}
}

func TestCreateMealAndDailySummary(t *testing.T) {
	ta := newTestApp(t)

	create := func(name string, mealType string, calories int, protein float64) {
		response := ta.request(t, http.MethodPost, "/meals/", mealInput{
			LoggedDate: "2026-03-01",
			MealType:   mealType,
			Name:       name,
			Calories:   calories,
			ProteinG:   protein,
		}, testBearerToken)
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", response.StatusCode, readAPIError(t, response.Body))
		}
	}
	create("Oatmeal", "Breakfast", 350, 12.5)
	create("Chicken bowl", "Lunch", 650, 45)

	response := ta.request(t, http.MethodGet, "/meals/day/2026-03-01", nil, testBearerToken)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	summary := decodeResponse[dailySummaryResponse](t, response)

	if summary.Date != "2026-03-01" {
		t.Fatalf("unexpected date %s", summary.Date)
	}
	if summary.TotalCalories != 1000 {
		t.Fatalf("expected 1000 calories, got %d", summary.TotalCalories)
	}
	if summary.TotalProtein != 57.5 {
		t.Fatalf("expected 57.5 protein, got %v", summary.TotalProtein)
	}
	if len(summary.Meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(summary.Meals))
	}

	response = ta.request(t, http.MethodGet, "/meals/day/2026-03-02", nil, testBearerToken)
	empty := decodeResponse[dailySummaryResponse](t, response)
	if empty.TotalCalories != 0 || len(empty.Meals) != 0 {
		t.Fatalf("expected empty day, got %+v", empty)
	}
}

func TestCreateMealValidation(t *testing.T) {
	ta := newTestApp(t)

	tests := []struct {
		name  string
		input mealInput
	}{
		{name: "missing name", input: mealInput{LoggedDate: "2026-03-01", MealType: "Lunch"}},
		{name: "bad meal type", input: mealInput{LoggedDate: "2026-03-01", MealType: "Brunch", Name: "Toast"}},
		{name: "bad date", input: mealInput{LoggedDate: "03/01/2026", MealType: "Lunch", Name: "Toast"}},
		{name: "negative calories", input: mealInput{LoggedDate: "2026-03-01", MealType: "Lunch", Name: "Toast", Calories: -1}},
		{name: "negative protein", input: mealInput{LoggedDate: "2026-03-01", MealType: "Lunch", Name: "Toast", ProteinG: -0.1}},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			response := ta.request(t, http.MethodPost, "/meals/", testCase.input, testBearerToken)
			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", response.StatusCode)
			}
		})
	}
}

func TestUpdateMealPortionRescalesMacros(t *testing.T) {
	ta := newTestApp(t)

	response := ta.request(t, http.MethodPost, "/recipes/", recipeInput{Name: "Stew"}, testBearerToken)
	recipe := decodeResponse[recipeResponse](t, response)
	response = ta.request(t, http.MethodPost, recipeIngredientsPath(recipe.ID), recipeIngredientInput{
		FoodName:        ptr("Beef"),
		Quantity:        ptr(500.0),
		CaloriesPerUnit: ptr(3.0),
		ProteinPerUnit:  ptr(0.2),
	}, testBearerToken)
	ingredient := decodeResponse[recipeIngredientResponse](t, response)

	cooked := 1000.0
	portion := 200.0
	response = ta.request(t, http.MethodPost, recipeLogPath(recipe.ID), logRecipeInput{
		LoggedDate:        "2026-03-01",
		MealType:          "Dinner",
		TotalCookedWeight: &cooked,
		PortionWeight:     &portion,
		Ingredients:       []logRecipeIngredientRef{{IngredientID: ingredient.ID, Quantity: 500}},
	}, testBearerToken)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", response.StatusCode, readAPIError(t, response.Body))
	}
	meal := decodeResponse[mealResponse](t, response)
	if meal.Calories != 300 {
		t.Fatalf("expected 300 calories for the logged portion, got %d", meal.Calories)
	}

	// Halving the portion relative to the cooked batch halves the macros.
	response = ta.request(t, http.MethodPatch, mealPortionPath(meal.ID), portionInput{PortionWeight: 100}, testBearerToken)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", response.StatusCode, readAPIError(t, response.Body))
	}
	rescaled := decodeResponse[mealResponse](t, response)
	if rescaled.Calories != 150 {
		t.Fatalf("expected 150 calories after rescale, got %d", rescaled.Calories)
	}
	if rescaled.ProteinG != 10 {
		t.Fatalf("expected 10 protein after rescale, got %v", rescaled.ProteinG)
	}
	if rescaled.PortionWeight == nil || *rescaled.PortionWeight != 100 {
		t.Fatalf("expected portion weight 100, got %v", rescaled.PortionWeight)
	}
}

func TestUpdateMealPortionValidation(t *testing.T) {
	ta := newTestApp(t)

	response := ta.request(t, http.MethodPatch, "/meals/1/portion", portionInput{PortionWeight: 0}, testBearerToken)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-positive portion, got %d", response.StatusCode)
	}

	response = ta.request(t, http.MethodPatch, "/meals/999/portion", portionInput{PortionWeight: 100}, testBearerToken)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown meal, got %d", response.StatusCode)
	}
}

func TestDeleteMealEnforcesOwnership(t *testing.T) {
	ta := newTestApp(t)

	response := ta.request(t, http.MethodPost, "/meals/", mealInput{
		LoggedDate: "2026-03-01", MealType: "Snack", Name: "Apple", Calories: 90,
	}, testBearerToken)
	meal := decodeResponse[mealResponse](t, response)

	otherToken, _ := ta.secondUser()
	response = ta.request(t, http.MethodDelete, mealPath(meal.ID), nil, otherToken)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign meal, got %d", response.StatusCode)
	}

	response = ta.request(t, http.MethodDelete, mealPath(meal.ID), nil, testBearerToken)
	if response.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", response.StatusCode)
	}
	response = ta.request(t, http.MethodDelete, mealPath(meal.ID), nil, testBearerToken)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", response.StatusCode)
	}
}

func TestMealHistoryBucketsByDate(t *testing.T) {
	ta := newTestApp(t)

	meals := []mealInput{
		{LoggedDate: "2026-03-03", MealType: "Breakfast", Name: "A", Calories: 100, ProteinG: 10},
		{LoggedDate: "2026-03-03", MealType: "Lunch", Name: "B", Calories: 200, ProteinG: 20},
		{LoggedDate: "2026-03-02", MealType: "Dinner", Name: "C", Calories: 300},
		{LoggedDate: "2026-03-01", MealType: "Snack", Name: "D", Calories: 400},
	}
	for _, input := range meals {
		ta.request(t, http.MethodPost, "/meals/", input, testBearerToken)
	}

	response := ta.request(t, http.MethodGet, "/meals/history?limit=2", nil, testBearerToken)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	history := decodeResponse[[]historyDayResponse](t, response)

	if len(history) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(history))
	}
	if history[0].Date != "2026-03-03" || history[1].Date != "2026-03-02" {
		t.Fatalf("expected descending dates, got %s then %s", history[0].Date, history[1].Date)
	}
	if history[0].TotalCalories != 300 || history[0].TotalProtein != 30 {
		t.Fatalf("unexpected totals for most recent day: %+v", history[0])
	}

	response = ta.request(t, http.MethodGet, "/meals/history?limit=0", nil, testBearerToken)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-positive limit, got %d", response.StatusCode)
	}
}
