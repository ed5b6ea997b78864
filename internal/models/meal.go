package models

import "time"

const (
	MealTypeBreakfast = "Breakfast"
	MealTypeLunch     = "Lunch"
	MealTypeDinner    = "Dinner"
	MealTypeSnack     = "Snack"
)

func IsValidMealType(mealType string) bool {
	switch mealType {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

type Meal struct {
	ID                uint      `gorm:"primaryKey"`
	UserID            string    `gorm:"not null;index:idx_meals_user_date"`
	LoggedDate        time.Time `gorm:"type:date;not null;index:idx_meals_user_date"`
	MealType          string    `gorm:"not null"`
	Name              string    `gorm:"not null"`
	Calories          int       `gorm:"not null;default:0"`
	ProteinG          float64   `gorm:"not null;default:0"`
	CarbsG            float64   `gorm:"not null;default:0"`
	FatG              float64   `gorm:"not null;default:0"`
	FiberG            float64   `gorm:"not null;default:0"`
	Notes             string
	RawWeight         *float64
	TotalCookedWeight *float64
	PortionWeight     *float64
	RecipeID          *uint
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// MealIngredient is an immutable snapshot of one recipe ingredient as it was
// when the meal was logged. The recipe template keeps changing afterwards;
// the snapshot does not.
type MealIngredient struct {
	ID                 uint   `gorm:"primaryKey"`
	MealID             uint   `gorm:"not null;index"`
	RecipeIngredientID *uint
	FoodName           string  `gorm:"not null"`
	Quantity           float64 `gorm:"not null"`
	Unit               string  `gorm:"not null;default:g"`
	CaloriesPerUnit    float64 `gorm:"not null;default:0"`
	ProteinPerUnit     float64 `gorm:"not null;default:0"`
	CarbsPerUnit       float64 `gorm:"not null;default:0"`
	FatPerUnit         float64 `gorm:"not null;default:0"`
	FiberPerUnit       float64 `gorm:"not null;default:0"`
	UsdaFdcID          *int64
	CreatedAt          time.Time
}
