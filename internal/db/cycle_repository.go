package db

import (
	"github.com/lunara-app/lunara/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) Save(cycle *models.Cycle) error {
	return repo.database.Save(cycle).Error
}

func (repo *CycleRepository) SaveAll(cycles []*models.Cycle) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for _, cycle := range cycles {
			if err := tx.Save(cycle).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (repo *CycleRepository) FindByID(id uint) (models.Cycle, bool, error) {
	cycle := models.Cycle{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&cycle)
	if result.Error != nil {
		return models.Cycle{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Cycle{}, false, nil
	}
	return cycle, true, nil
}

func (repo *CycleRepository) FindByUser(userID uint) ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	if err := repo.database.Where("user_id = ?", userID).Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

// FindMostRecentByUser resolves the cycle with the maximum start date.
// Recency is a query contract here, not a client-side sort.
func (repo *CycleRepository) FindMostRecentByUser(userID uint) (models.Cycle, bool, error) {
	cycle := models.Cycle{}
	result := repo.database.
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Limit(1).
		Find(&cycle)
	if result.Error != nil {
		return models.Cycle{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Cycle{}, false, nil
	}
	return cycle, true, nil
}

func (repo *CycleRepository) FindPredictedByUser(userID uint) ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	if err := repo.database.
		Where("user_id = ? AND is_predicted = ?", userID, true).
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := repo.database.Model(&models.Cycle{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *CycleRepository) DeleteByID(id uint) error {
	return repo.database.Delete(&models.Cycle{}, id).Error
}

func (repo *CycleRepository) DeleteAll(cycles []models.Cycle) error {
	if len(cycles) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(cycles))
	for _, cycle := range cycles {
		ids = append(ids, cycle.ID)
	}
	return repo.database.Delete(&models.Cycle{}, ids).Error
}
