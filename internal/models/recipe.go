package models

import "time"

type Recipe struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           string `gorm:"not null;index"`
	Name             string `gorm:"not null"`
	Servings         int    `gorm:"not null;default:1"`
	LastCookedWeight *float64
	LastMealType     *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RecipeIngredient belongs to exactly one recipe. Unchecking excludes the row
// from totals but keeps it in the template.
type RecipeIngredient struct {
	ID              uint    `gorm:"primaryKey"`
	RecipeID        uint    `gorm:"not null;index"`
	FoodName        string  `gorm:"not null"`
	Quantity        float64 `gorm:"not null"`
	Unit            string  `gorm:"not null;default:g"`
	Checked         bool    `gorm:"not null;default:true"`
	CaloriesPerUnit float64 `gorm:"not null;default:0"`
	ProteinPerUnit  float64 `gorm:"not null;default:0"`
	CarbsPerUnit    float64 `gorm:"not null;default:0"`
	FatPerUnit      float64 `gorm:"not null;default:0"`
	FiberPerUnit    float64 `gorm:"not null;default:0"`
	UsdaFdcID       *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
