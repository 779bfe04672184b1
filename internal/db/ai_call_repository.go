package db

import (
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"gorm.io/gorm"
)

type AICallRepository struct {
	database *gorm.DB
}

func NewAICallRepository(database *gorm.DB) *AICallRepository {
	return &AICallRepository{database: database}
}

func (repo *AICallRepository) Create(call *models.AICall) error {
	return repo.database.Create(call).Error
}

func (repo *AICallRepository) CountOutcomesSince(since time.Time) ([]models.AICallOutcomeCount, error) {
	rows := make([]models.AICallOutcomeCount, 0)
	if err := repo.database.Model(&models.AICall{}).
		Select("operation, outcome, COUNT(*) AS calls, COALESCE(SUM(attempts), 0) AS attempts").
		Where("created_at >= ?", since).
		Group("operation, outcome").
		Order("operation ASC, outcome ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
