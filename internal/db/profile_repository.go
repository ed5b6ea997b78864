package db

import (
	"github.com/fuelhq/fuel/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByID(userID string) (models.Profile, bool, error) {
	profile := models.Profile{}
	result := repo.database.
		Where("id = ?", userID).
		Limit(1).
		Find(&profile)
	if result.Error != nil {
		return models.Profile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Profile{}, false, nil
	}
	return profile, true, nil
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) Update(userID string, updates map[string]any) (models.Profile, error) {
	result := repo.database.Model(&models.Profile{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return models.Profile{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Profile{}, ErrNotFound
	}

	profile := models.Profile{}
	if err := repo.database.Where("id = ?", userID).First(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
