package db

import (
	"errors"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"gorm.io/gorm"
)

type DietRepository struct {
	database *gorm.DB
}

func NewDietRepository(database *gorm.DB) *DietRepository {
	return &DietRepository{database: database}
}

func (repo *DietRepository) CountPlans() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.DietPlan{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListPlans returns the catalog without the day-by-day schedule.
func (repo *DietRepository) ListPlans() ([]models.DietPlan, error) {
	plans := make([]models.DietPlan, 0)
	if err := repo.database.
		Select("id", "name", "description", "category", "benefits", "pros", "cons", "is_ai_generated", "created_at").
		Order("id ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *DietRepository) FindPlan(planID uint) (models.DietPlan, error) {
	var plan models.DietPlan
	if err := repo.database.First(&plan, planID).Error; err != nil {
		return models.DietPlan{}, err
	}
	return plan, nil
}

// UpsertPlans inserts catalog entries by name and refreshes existing ones in
// place so that user_diets keep pointing at stable plan ids.
func (repo *DietRepository) UpsertPlans(plans []models.DietPlan) (int, error) {
	written := 0
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		for index := range plans {
			plan := plans[index]

			var existing models.DietPlan
			result := tx.Select("id").Where("name = ?", plan.Name).Limit(1).Find(&existing)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				if err := tx.Create(&plan).Error; err != nil {
					return err
				}
				written++
				continue
			}

			plan.ID = existing.ID
			if err := tx.Model(&plan).
				Select("description", "category", "benefits", "pros", "cons", "days", "is_ai_generated").
				Updates(&plan).Error; err != nil {
				return err
			}
			written++
		}
		return nil
	})
	return written, err
}

// StartPlan cancels any active plan of the user and inserts the new one in a
// single transaction. The partial unique index on active rows rejects a
// concurrent second activation instead of leaving two active plans.
func (repo *DietRepository) StartPlan(userID uint, planID uint, startedAt time.Time) (models.UserDiet, error) {
	entry := models.UserDiet{
		UserID:    userID,
		PlanID:    planID,
		StartDate: startedAt,
		Status:    models.DietStatusActive,
		Progress:  1,
	}

	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.UserDiet{}).
			Where("user_id = ? AND status = ?", userID, models.DietStatusActive).
			Update("status", models.DietStatusCancelled).Error; err != nil {
			return err
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return models.UserDiet{}, err
	}
	return entry, nil
}

func (repo *DietRepository) FindActive(userID uint) (models.UserDiet, bool, error) {
	var entry models.UserDiet
	err := repo.database.
		Preload("Plan").
		Where("user_id = ? AND status = ?", userID, models.DietStatusActive).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserDiet{}, false, nil
	}
	if err != nil {
		return models.UserDiet{}, false, err
	}
	return entry, true, nil
}

func (repo *DietRepository) ListByUser(userID uint) ([]models.UserDiet, error) {
	entries := make([]models.UserDiet, 0)
	err := repo.database.
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *DietRepository) UpdateProgress(entryID uint, progress int, status string) error {
	return repo.database.Model(&models.UserDiet{}).Where("id = ?", entryID).Updates(map[string]any{
		"progress": progress,
		"status":   status,
	}).Error
}
