package db

import (
	"github.com/fuelhq/fuel/internal/models"
	"gorm.io/gorm"
)

type IngredientRepository struct {
	database *gorm.DB
}

func NewIngredientRepository(database *gorm.DB) *IngredientRepository {
	return &IngredientRepository{database: database}
}

func (repo *IngredientRepository) List() ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0)
	if err := repo.database.Order("name ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (repo *IngredientRepository) Create(ingredient *models.Ingredient) error {
	return repo.database.Create(ingredient).Error
}

func (repo *IngredientRepository) Update(ingredientID uint, updates map[string]any) (models.Ingredient, error) {
	result := repo.database.Model(&models.Ingredient{}).Where("id = ?", ingredientID).Updates(updates)
	if result.Error != nil {
		return models.Ingredient{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Ingredient{}, ErrNotFound
	}

	ingredient := models.Ingredient{}
	if err := repo.database.First(&ingredient, ingredientID).Error; err != nil {
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

func (repo *IngredientRepository) Delete(ingredientID uint) error {
	result := repo.database.Delete(&models.Ingredient{}, ingredientID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
