package db

import (
	"time"

	"github.com/fuelhq/fuel/internal/models"
	"gorm.io/gorm"
)

type DayTypeRepository struct {
	database *gorm.DB
}

func NewDayTypeRepository(database *gorm.DB) *DayTypeRepository {
	return &DayTypeRepository{database: database}
}

func (repo *DayTypeRepository) ListByUser(userID string) ([]models.DayType, error) {
	dayTypes := make([]models.DayType, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&dayTypes).Error; err != nil {
		return nil, err
	}
	return dayTypes, nil
}

func (repo *DayTypeRepository) FindByIDForUser(dayTypeID uint, userID string) (models.DayType, bool, error) {
	dayType := models.DayType{}
	result := repo.database.
		Where("id = ? AND user_id = ?", dayTypeID, userID).
		Limit(1).
		Find(&dayType)
	if result.Error != nil {
		return models.DayType{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayType{}, false, nil
	}
	return dayType, true, nil
}

func (repo *DayTypeRepository) Create(dayType *models.DayType) error {
	return repo.database.Create(dayType).Error
}

func (repo *DayTypeRepository) Update(dayTypeID uint, userID string, updates map[string]any) (models.DayType, error) {
	result := repo.database.Model(&models.DayType{}).
		Where("id = ? AND user_id = ?", dayTypeID, userID).
		Updates(updates)
	if result.Error != nil {
		return models.DayType{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayType{}, ErrNotFound
	}

	dayType := models.DayType{}
	if err := repo.database.First(&dayType, dayTypeID).Error; err != nil {
		return models.DayType{}, err
	}
	return dayType, nil
}

func (repo *DayTypeRepository) Delete(dayTypeID uint, userID string) error {
	result := repo.database.
		Where("id = ? AND user_id = ?", dayTypeID, userID).
		Delete(&models.DayType{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertLog assigns a day type to one calendar date; the assignment is unique
// per (user, date).
func (repo *DayTypeRepository) UpsertLog(userID string, dayStart time.Time, dayEnd time.Time, dayTypeID uint) error {
	entry := models.DayLog{}
	result := repo.database.
		Where("user_id = ? AND logged_date >= ? AND logged_date < ?", userID, dayStart, dayEnd).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		entry = models.DayLog{
			UserID:     userID,
			LoggedDate: dayStart,
			DayTypeID:  dayTypeID,
		}
		return repo.database.Create(&entry).Error
	}

	entry.DayTypeID = dayTypeID
	return repo.database.Save(&entry).Error
}

func (repo *DayTypeRepository) DeleteLog(userID string, dayStart time.Time, dayEnd time.Time) error {
	result := repo.database.
		Where("user_id = ? AND logged_date >= ? AND logged_date < ?", userID, dayStart, dayEnd).
		Delete(&models.DayLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
