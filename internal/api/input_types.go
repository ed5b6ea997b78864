package api

type mealInput struct {
	LoggedDate string  `json:"logged_date"`
	MealType   string  `json:"meal_type"`
	Name       string  `json:"name"`
	Calories   int     `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	CarbsG     float64 `json:"carbs_g"`
	FatG       float64 `json:"fat_g"`
	FiberG     float64 `json:"fiber_g"`
	Notes      string  `json:"notes"`
}

type portionInput struct {
	PortionWeight float64 `json:"portion_weight"`
}

type ingredientInput struct {
	Name            *string  `json:"name"`
	CaloriesPer100g *int     `json:"calories_per_100g"`
	ProteinPer100g  *float64 `json:"protein_per_100g"`
	CarbsPer100g    *float64 `json:"carbs_per_100g"`
	FatPer100g      *float64 `json:"fat_per_100g"`
	FiberPer100g    *float64 `json:"fiber_per_100g"`
	UsdaFdcID       *int64   `json:"usda_fdc_id"`
	Upc             *string  `json:"upc"`
	Source          *string  `json:"source"`
	SourceName      *string  `json:"source_name"`
}

type recipeInput struct {
	Name     string `json:"name"`
	Servings int    `json:"servings"`
}

type recipeIngredientInput struct {
	FoodName        *string  `json:"food_name"`
	Quantity        *float64 `json:"quantity"`
	Unit            *string  `json:"unit"`
	Checked         *bool    `json:"checked"`
	CaloriesPerUnit *float64 `json:"calories_per_unit"`
	ProteinPerUnit  *float64 `json:"protein_per_unit"`
	CarbsPerUnit    *float64 `json:"carbs_per_unit"`
	FatPerUnit      *float64 `json:"fat_per_unit"`
	FiberPerUnit    *float64 `json:"fiber_per_unit"`
	UsdaFdcID       *int64   `json:"usda_fdc_id"`
}

type logRecipeInput struct {
	LoggedDate        string                   `json:"logged_date"`
	MealType          string                   `json:"meal_type"`
	TotalCookedWeight *float64                 `json:"total_cooked_weight"`
	PortionWeight     *float64                 `json:"portion_weight"`
	Ingredients       []logRecipeIngredientRef `json:"ingredients"`
	Notes             string                   `json:"notes"`
}

type logRecipeIngredientRef struct {
	IngredientID uint    `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

type profileInput struct {
	DisplayName *string `json:"display_name"`
	CalorieGoal *int    `json:"calorie_goal"`
	ProteinGoal *int    `json:"protein_goal"`
	CarbsGoal   *int    `json:"carbs_goal"`
	FatGoal     *int    `json:"fat_goal"`
	FiberGoal   *int    `json:"fiber_goal"`
}

type dayTypeInput struct {
	Name        *string `json:"name"`
	CaloriesMin *int    `json:"calories_min"`
	CaloriesMax *int    `json:"calories_max"`
	ProteinMin  *int    `json:"protein_min"`
	ProteinMax  *int    `json:"protein_max"`
	CarbsMin    *int    `json:"carbs_min"`
	CarbsMax    *int    `json:"carbs_max"`
	FatMin      *int    `json:"fat_min"`
	FatMax      *int    `json:"fat_max"`
	FiberMin    *int    `json:"fiber_min"`
	FiberMax    *int    `json:"fiber_max"`
}

type assignDayTypeInput struct {
	DayTypeID uint `json:"day_type_id"`
}
