package models

import "time"

// Ingredient is a global catalog entry with nutrients on a per-100g basis.
// Catalog rows are not user-scoped.
type Ingredient struct {
	ID              uint    `gorm:"primaryKey"`
	Name            string  `gorm:"not null"`
	CaloriesPer100g int     `gorm:"column:calories_per_100g;not null;default:0"`
	ProteinPer100g  float64 `gorm:"column:protein_per_100g;not null;default:0"`
	CarbsPer100g    float64 `gorm:"column:carbs_per_100g;not null;default:0"`
	FatPer100g      float64 `gorm:"column:fat_per_100g;not null;default:0"`
	FiberPer100g    float64 `gorm:"column:fiber_per_100g;not null;default:0"`
	UsdaFdcID       *int64
	Upc             *string
	Source          string
	SourceName      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
