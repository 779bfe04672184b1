package db

import (
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"gorm.io/gorm"
)

type ReportRepository struct {
	database *gorm.DB
}

func NewReportRepository(database *gorm.DB) *ReportRepository {
	return &ReportRepository{database: database}
}

func (repo *ReportRepository) Create(report *models.Report) error {
	return repo.database.Create(report).Error
}

func (repo *ReportRepository) FindByID(reportID uint) (models.Report, error) {
	var report models.Report
	if err := repo.database.First(&report, reportID).Error; err != nil {
		return models.Report{}, err
	}
	return report, nil
}

func (repo *ReportRepository) ListByUser(userID uint) ([]models.Report, error) {
	reports := make([]models.Report, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListRecentByUser orders by report date first so chat context favors the
// newest medical data, not the newest upload.
func (repo *ReportRepository) ListRecentByUser(userID uint, limit int) ([]models.Report, error) {
	reports := make([]models.Report, 0, limit)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("report_date IS NULL, report_date DESC, created_at DESC").
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
