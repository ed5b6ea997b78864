package api

import (
	"github.com/fuelhq/fuel/internal/models"
	"github.com/fuelhq/fuel/internal/services"
)

type mealResponse struct {
	ID                uint     `json:"id"`
	LoggedDate        string   `json:"logged_date"`
	MealType          string   `json:"meal_type"`
	Name              string   `json:"name"`
	Calories          int      `json:"calories"`
	ProteinG          float64  `json:"protein_g"`
	CarbsG            float64  `json:"carbs_g"`
	FatG              float64  `json:"fat_g"`
	FiberG            float64  `json:"fiber_g"`
	Notes             string   `json:"notes,omitempty"`
	RawWeight         *float64 `json:"raw_weight,omitempty"`
	TotalCookedWeight *float64 `json:"total_cooked_weight,omitempty"`
	PortionWeight     *float64 `json:"portion_weight,omitempty"`
	RecipeID          *uint    `json:"recipe_id,omitempty"`
}

func buildMealResponse(meal models.Meal) mealResponse {
	return mealResponse{
		ID:                meal.ID,
		LoggedDate:        services.FormatDay(meal.LoggedDate),
		MealType:          meal.MealType,
		Name:              meal.Name,
		Calories:          meal.Calories,
		ProteinG:          meal.ProteinG,
		CarbsG:            meal.CarbsG,
		FatG:              meal.FatG,
		FiberG:            meal.FiberG,
		Notes:             meal.Notes,
		RawWeight:         meal.RawWeight,
		TotalCookedWeight: meal.TotalCookedWeight,
		PortionWeight:     meal.PortionWeight,
		RecipeID:          meal.RecipeID,
	}
}

func buildMealResponses(meals []models.Meal) []mealResponse {
	responses := make([]mealResponse, 0, len(meals))
	for _, meal := range meals {
		responses = append(responses, buildMealResponse(meal))
	}
	return responses
}

type dailySummaryResponse struct {
	Date          string         `json:"date"`
	TotalCalories int            `json:"total_calories"`
	TotalProtein  float64        `json:"total_protein"`
	TotalCarbs    float64        `json:"total_carbs"`
	TotalFat      float64        `json:"total_fat"`
	TotalFiber    float64        `json:"total_fiber"`
	Meals         []mealResponse `json:"meals"`
}

func buildDailySummaryResponse(totals services.DayTotals, meals []models.Meal) dailySummaryResponse {
	return dailySummaryResponse{
		Date:          services.FormatDay(totals.Date),
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalCarbs:    totals.Carbs,
		TotalFat:      totals.Fat,
		TotalFiber:    totals.Fiber,
		Meals:         buildMealResponses(meals),
	}
}

type historyDayResponse struct {
	Date          string  `json:"date"`
	TotalCalories int     `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
	TotalFiber    float64 `json:"total_fiber"`
}

func buildHistoryResponse(days []services.DayTotals) []historyDayResponse {
	responses := make([]historyDayResponse, 0, len(days))
	for _, day := range days {
		responses = append(responses, historyDayResponse{
			Date:          services.FormatDay(day.Date),
			TotalCalories: day.Calories,
			TotalProtein:  day.Protein,
			TotalCarbs:    day.Carbs,
			TotalFat:      day.Fat,
			TotalFiber:    day.Fiber,
		})
	}
	return responses
}

type ingredientResponse struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	CaloriesPer100g int     `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
	FiberPer100g    float64 `json:"fiber_per_100g"`
	UsdaFdcID       *int64  `json:"usda_fdc_id,omitempty"`
	Upc             *string `json:"upc,omitempty"`
	Source          string  `json:"source,omitempty"`
	SourceName      string  `json:"source_name,omitempty"`
}

func buildIngredientResponse(ingredient models.Ingredient) ingredientResponse {
	return ingredientResponse{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		CaloriesPer100g: ingredient.CaloriesPer100g,
		ProteinPer100g:  ingredient.ProteinPer100g,
		CarbsPer100g:    ingredient.CarbsPer100g,
		FatPer100g:      ingredient.FatPer100g,
		FiberPer100g:    ingredient.FiberPer100g,
		UsdaFdcID:       ingredient.UsdaFdcID,
		Upc:             ingredient.Upc,
		Source:          ingredient.Source,
		SourceName:      ingredient.SourceName,
	}
}

type recipeIngredientResponse struct {
	ID              uint    `json:"id"`
	FoodName        string  `json:"food_name"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	Checked         bool    `json:"checked"`
	CaloriesPerUnit float64 `json:"calories_per_unit"`
	ProteinPerUnit  float64 `json:"protein_per_unit"`
	CarbsPerUnit    float64 `json:"carbs_per_unit"`
	FatPerUnit      float64 `json:"fat_per_unit"`
	FiberPerUnit    float64 `json:"fiber_per_unit"`
	UsdaFdcID       *int64  `json:"usda_fdc_id,omitempty"`
}

type recipeResponse struct {
	ID               uint                       `json:"id"`
	Name             string                     `json:"name"`
	Servings         int                        `json:"servings"`
	LastCookedWeight *float64                   `json:"last_cooked_weight,omitempty"`
	LastMealType     *string                    `json:"last_meal_type,omitempty"`
	Ingredients      []recipeIngredientResponse `json:"ingredients"`
	TotalCalories    float64                    `json:"total_calories"`
	TotalProtein     float64                    `json:"total_protein"`
	TotalCarbs       float64                    `json:"total_carbs"`
	TotalFat         float64                    `json:"total_fat"`
	TotalFiber       float64                    `json:"total_fiber"`
}

func buildRecipeResponse(recipe models.Recipe, ingredients []models.RecipeIngredient) recipeResponse {
	totals := services.ComputeTotals(ingredients)
	rows := make([]recipeIngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		rows = append(rows, recipeIngredientResponse{
			ID:              ingredient.ID,
			FoodName:        ingredient.FoodName,
			Quantity:        ingredient.Quantity,
			Unit:            ingredient.Unit,
			Checked:         ingredient.Checked,
			CaloriesPerUnit: ingredient.CaloriesPerUnit,
			ProteinPerUnit:  ingredient.ProteinPerUnit,
			CarbsPerUnit:    ingredient.CarbsPerUnit,
			FatPerUnit:      ingredient.FatPerUnit,
			FiberPerUnit:    ingredient.FiberPerUnit,
			UsdaFdcID:       ingredient.UsdaFdcID,
		})
	}
	return recipeResponse{
		ID:               recipe.ID,
		Name:             recipe.Name,
		Servings:         recipe.Servings,
		LastCookedWeight: recipe.LastCookedWeight,
		LastMealType:     recipe.LastMealType,
		Ingredients:      rows,
		TotalCalories:    totals.Calories,
		TotalProtein:     totals.Protein,
		TotalCarbs:       totals.Carbs,
		TotalFat:         totals.Fat,
		TotalFiber:       totals.Fiber,
	}
}

type profileResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	CalorieGoal int    `json:"calorie_goal"`
	ProteinGoal int    `json:"protein_goal"`
	CarbsGoal   int    `json:"carbs_goal"`
	FatGoal     int    `json:"fat_goal"`
	FiberGoal   int    `json:"fiber_goal"`
}

func buildProfileResponse(profile models.Profile) profileResponse {
	return profileResponse{
		ID:          profile.ID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		CalorieGoal: profile.CalorieGoal,
		ProteinGoal: profile.ProteinGoal,
		CarbsGoal:   profile.CarbsGoal,
		FatGoal:     profile.FatGoal,
		FiberGoal:   profile.FiberGoal,
	}
}

type dayTypeResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	CaloriesMin int    `json:"calories_min"`
	CaloriesMax int    `json:"calories_max"`
	ProteinMin  int    `json:"protein_min"`
	ProteinMax  int    `json:"protein_max"`
	CarbsMin    int    `json:"carbs_min"`
	CarbsMax    int    `json:"carbs_max"`
	FatMin      int    `json:"fat_min"`
	FatMax      int    `json:"fat_max"`
	FiberMin    int    `json:"fiber_min"`
	FiberMax    int    `json:"fiber_max"`
}

func buildDayTypeResponse(dayType models.DayType) dayTypeResponse {
	return dayTypeResponse{
		ID:          dayType.ID,
		Name:        dayType.Name,
		CaloriesMin: dayType.CaloriesMin,
		CaloriesMax: dayType.CaloriesMax,
		ProteinMin:  dayType.ProteinMin,
		ProteinMax:  dayType.ProteinMax,
		CarbsMin:    dayType.CarbsMin,
		CarbsMax:    dayType.CarbsMax,
		FatMin:      dayType.FatMin,
		FatMax:      dayType.FatMax,
		FiberMin:    dayType.FiberMin,
		FiberMax:    dayType.FiberMax,
	}
}
