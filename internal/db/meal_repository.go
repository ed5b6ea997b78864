package db

import (
	"time"

	"github.com/fuelhq/fuel/internal/models"
	"gorm.io/gorm"
)

type MealRepository struct {
	database *gorm.DB
}

func NewMealRepository(database *gorm.DB) *MealRepository {
	return &MealRepository{database: database}
}

// ListByUserAndDayRange returns the user's meals for one day in creation order.
func (repo *MealRepository) ListByUserAndDayRange(userID string, dayStart time.Time, dayEnd time.Time) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.
		Where("user_id = ? AND logged_date >= ? AND logged_date < ?", userID, dayStart, dayEnd).
		Order("created_at ASC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// ListRecentByUser over-fetches the newest rows by logged date so the caller
// can bucket them into days; day boundaries are not known until grouping.
func (repo *MealRepository) ListRecentByUser(userID string, limit int) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("logged_date DESC, id DESC").
		Limit(limit).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *MealRepository) FindByIDForUser(mealID uint, userID string) (models.Meal, bool, error) {
	meal := models.Meal{}
	result := repo.database.
		Where("id = ? AND user_id = ?", mealID, userID).
		Limit(1).
		Find(&meal)
	if result.Error != nil {
		return models.Meal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Meal{}, false, nil
	}
	return meal, true, nil
}

// FindLoggedFromRecipe returns the meal only when it belongs to the user and
// carries provenance from the given recipe.
func (repo *MealRepository) FindLoggedFromRecipe(mealID uint, recipeID uint, userID string) (models.Meal, bool, error) {
	meal := models.Meal{}
	result := repo.database.
		Where("id = ? AND user_id = ? AND recipe_id = ?", mealID, userID, recipeID).
		Limit(1).
		Find(&meal)
	if result.Error != nil {
		return models.Meal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Meal{}, false, nil
	}
	return meal, true, nil
}

func (repo *MealRepository) Create(meal *models.Meal) error {
	return repo.database.Create(meal).Error
}

func (repo *MealRepository) Save(meal *models.Meal) error {
	return repo.database.Save(meal).Error
}

func (repo *MealRepository) DeleteByIDForUser(mealID uint, userID string) error {
	result := repo.database.Where("id = ? AND user_id = ?", mealID, userID).Delete(&models.Meal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MealRepository) InsertIngredientSnapshots(snapshots []models.MealIngredient) error {
	if len(snapshots) == 0 {
		return nil
	}
	return repo.database.Create(&snapshots).Error
}

func (repo *MealRepository) ListIngredientSnapshots(mealID uint) ([]models.MealIngredient, error) {
	snapshots := make([]models.MealIngredient, 0)
	if err := repo.database.
		Where("meal_id = ?", mealID).
		Order("id ASC").
		Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}
