package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles    *ProfileRepository
	Meals       *MealRepository
	Ingredients *IngredientRepository
	Recipes     *RecipeRepository
	DayTypes    *DayTypeRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles:    NewProfileRepository(database),
		Meals:       NewMealRepository(database),
		Ingredients: NewIngredientRepository(database),
		Recipes:     NewRecipeRepository(database),
		DayTypes:    NewDayTypeRepository(database),
	}
}
