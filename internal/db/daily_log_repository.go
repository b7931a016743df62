package db

import (
	"time"

	"github.com/lunara-app/lunara/internal/models"
	"gorm.io/gorm"
)

type DailyLogRepository struct {
	database *gorm.DB
}

func NewDailyLogRepository(database *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{database: database}
}

func (repo *DailyLogRepository) FindByID(id uint) (models.DailyLog, bool, error) {
	entry := models.DailyLog{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.DailyLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *DailyLogRepository) FindByUserAndDate(userID uint, day time.Time) (models.DailyLog, bool, error) {
	entry := models.DailyLog{}
	result := repo.database.
		Where("user_id = ? AND date = ?", userID, day).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *DailyLogRepository) ListByUser(userID uint) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) Create(entry *models.DailyLog) error {
	return repo.database.Create(entry).Error
}

func (repo *DailyLogRepository) Save(entry *models.DailyLog) error {
	return repo.database.Save(entry).Error
}

func (repo *DailyLogRepository) DeleteByID(id uint) error {
	return repo.database.Delete(&models.DailyLog{}, id).Error
}
