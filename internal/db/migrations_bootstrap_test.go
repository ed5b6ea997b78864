package db

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/fuelhq/fuel/internal/models"
)

func openSQLiteForTest(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func TestOpenSQLiteAppliesEmbeddedMigrations(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "fuel-clean.db")
	database := openSQLiteForTest(t, databasePath)

	tables := []string{"profiles", "meals", "meal_ingredients", "ingredients", "recipes", "recipe_ingredients", "day_types", "day_logs"}
	for _, table := range tables {
		var count int64
		err := database.
			Raw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).
			Scan(&count).Error
		if err != nil {
			t.Fatalf("inspect sqlite_master: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist after migration", table)
		}
	}
}

func TestOpenSQLiteMigrationsAreIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "fuel-reopen.db")

	first := openSQLiteForTest(t, databasePath)
	meal := models.Meal{
		UserID:     "11111111-1111-1111-1111-111111111111",
		LoggedDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		MealType:   models.MealTypeLunch,
		Name:       "Leftovers",
		Calories:   420,
	}
	if err := first.Create(&meal).Error; err != nil {
		t.Fatalf("create meal: %v", err)
	}

	// Reopening must not reapply migrations or lose data.
	second := openSQLiteForTest(t, databasePath)
	var count int64
	if err := second.Model(&models.Meal{}).Count(&count).Error; err != nil {
		t.Fatalf("count meals: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 meal after reopen, got %d", count)
	}
}

func TestDayLogUniquePerUserAndDate(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "fuel-day-log-index.db")
	database := openSQLiteForTest(t, databasePath)

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	firstLog := models.DayLog{
		UserID:     "11111111-1111-1111-1111-111111111111",
		LoggedDate: date,
		DayTypeID:  1,
	}
	if err := database.Create(&firstLog).Error; err != nil {
		t.Fatalf("create first day log: %v", err)
	}

	duplicate := models.DayLog{
		UserID:     firstLog.UserID,
		LoggedDate: date,
		DayTypeID:  2,
	}
	if err := database.Create(&duplicate).Error; err == nil {
		t.Fatal("expected duplicate (user, date) day log insert to fail")
	}

	otherUser := models.DayLog{
		UserID:     "22222222-2222-2222-2222-222222222222",
		LoggedDate: date,
		DayTypeID:  1,
	}
	if err := database.Create(&otherUser).Error; err != nil {
		t.Fatalf("create day log for other user: %v", err)
	}
}
