package db

import (
	"github.com/fuelhq/fuel/internal/models"
	"gorm.io/gorm"
)

type RecipeRepository struct {
	database *gorm.DB
}

func NewRecipeRepository(database *gorm.DB) *RecipeRepository {
	return &RecipeRepository{database: database}
}

func (repo *RecipeRepository) Create(recipe *models.Recipe) error {
	return repo.database.Create(recipe).Error
}

func (repo *RecipeRepository) ListByUser(userID string) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (repo *RecipeRepository) FindByIDForUser(recipeID uint, userID string) (models.Recipe, bool, error) {
	recipe := models.Recipe{}
	result := repo.database.
		Where("id = ? AND user_id = ?", recipeID, userID).
		Limit(1).
		Find(&recipe)
	if result.Error != nil {
		return models.Recipe{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Recipe{}, false, nil
	}
	return recipe, true, nil
}

func (repo *RecipeRepository) UpdateName(recipeID uint, name string) error {
	return repo.database.Model(&models.Recipe{}).Where("id = ?", recipeID).Update("name", name).Error
}

// UpdateStickyDefaults records the last logged meal type and, when supplied,
// the last cooked weight. These are UI defaults, not nutrition data.
func (repo *RecipeRepository) UpdateStickyDefaults(recipeID uint, updates map[string]any) error {
	return repo.database.Model(&models.Recipe{}).Where("id = ?", recipeID).Updates(updates).Error
}

// DeleteWithIngredients removes the recipe together with its template rows.
func (repo *RecipeRepository) DeleteWithIngredients(recipeID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, recipeID).Error
	})
}

func (repo *RecipeRepository) ListIngredients(recipeID uint) ([]models.RecipeIngredient, error) {
	ingredients := make([]models.RecipeIngredient, 0)
	if err := repo.database.
		Where("recipe_id = ?", recipeID).
		Order("created_at ASC, id ASC").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (repo *RecipeRepository) ListIngredientsForRecipes(recipeIDs []uint) ([]models.RecipeIngredient, error) {
	ingredients := make([]models.RecipeIngredient, 0)
	if len(recipeIDs) == 0 {
		return ingredients, nil
	}
	if err := repo.database.
		Where("recipe_id IN ?", recipeIDs).
		Order("created_at ASC, id ASC").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// ListIngredientsByIDs fetches only the selected template rows, scoped to the
// recipe so callers cannot pull rows from someone else's template.
func (repo *RecipeRepository) ListIngredientsByIDs(recipeID uint, ingredientIDs []uint) ([]models.RecipeIngredient, error) {
	ingredients := make([]models.RecipeIngredient, 0)
	if len(ingredientIDs) == 0 {
		return ingredients, nil
	}
	if err := repo.database.
		Where("recipe_id = ? AND id IN ?", recipeID, ingredientIDs).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (repo *RecipeRepository) AddIngredient(ingredient *models.RecipeIngredient) error {
	return repo.database.Create(ingredient).Error
}

func (repo *RecipeRepository) UpdateIngredient(ingredientID uint, recipeID uint, updates map[string]any) (models.RecipeIngredient, error) {
	result := repo.database.Model(&models.RecipeIngredient{}).
		Where("id = ? AND recipe_id = ?", ingredientID, recipeID).
		Updates(updates)
	if result.Error != nil {
		return models.RecipeIngredient{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.RecipeIngredient{}, ErrNotFound
	}

	ingredient := models.RecipeIngredient{}
	if err := repo.database.First(&ingredient, ingredientID).Error; err != nil {
		return models.RecipeIngredient{}, err
	}
	return ingredient, nil
}

func (repo *RecipeRepository) DeleteIngredient(ingredientID uint, recipeID uint) error {
	result := repo.database.
		Where("id = ? AND recipe_id = ?", ingredientID, recipeID).
		Delete(&models.RecipeIngredient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UncheckIngredients soft-removes template rows that were not part of a
// restored meal; the rows stay in the template.
func (repo *RecipeRepository) UncheckIngredients(ingredientIDs []uint) error {
	if len(ingredientIDs) == 0 {
		return nil
	}
	return repo.database.Model(&models.RecipeIngredient{}).
		Where("id IN ?", ingredientIDs).
		Update("checked", false).Error
}

func (repo *RecipeRepository) ResetIngredientQuantity(ingredientID uint, quantity float64) error {
	return repo.database.Model(&models.RecipeIngredient{}).
		Where("id = ?", ingredientID).
		Updates(map[string]any{"quantity": quantity, "checked": true}).Error
}
