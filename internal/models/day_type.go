package models

import "time"

// DayType is a user-owned named profile of min/max nutrient target ranges
// assignable to calendar dates.
type DayType struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      string `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	CaloriesMin int    `gorm:"not null;default:0"`
	CaloriesMax int    `gorm:"not null;default:0"`
	ProteinMin  int    `gorm:"not null;default:0"`
	ProteinMax  int    `gorm:"not null;default:0"`
	CarbsMin    int    `gorm:"not null;default:0"`
	CarbsMax    int    `gorm:"not null;default:0"`
	FatMin      int    `gorm:"not null;default:0"`
	FatMax      int    `gorm:"not null;default:0"`
	FiberMin    int    `gorm:"not null;default:0"`
	FiberMax    int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DayLog assigns a day type to one calendar date, unique per (user, date).
type DayLog struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     string    `gorm:"not null;uniqueIndex:uidx_day_logs_user_date"`
	LoggedDate time.Time `gorm:"type:date;not null;uniqueIndex:uidx_day_logs_user_date"`
	DayTypeID  uint      `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
