package models

import "time"

// Profile keys off the identity provider's user id.
type Profile struct {
	ID          string `gorm:"primaryKey"`
	Email       string `gorm:"not null"`
	DisplayName string
	CalorieGoal int `gorm:"not null;default:2000"`
	ProteinGoal int `gorm:"not null;default:120"`
	CarbsGoal   int `gorm:"not null;default:220"`
	FatGoal     int `gorm:"not null;default:70"`
	FiberGoal   int `gorm:"not null;default:30"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
