package db

import (
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"gorm.io/gorm"
)

type VitalsRepository struct {
	database *gorm.DB
}

func NewVitalsRepository(database *gorm.DB) *VitalsRepository {
	return &VitalsRepository{database: database}
}

func (repo *VitalsRepository) Create(entry *models.Vitals) error {
	return repo.database.Create(entry).Error
}

func (repo *VitalsRepository) FindByID(vitalsID uint) (models.Vitals, error) {
	var entry models.Vitals
	if err := repo.database.First(&entry, vitalsID).Error; err != nil {
		return models.Vitals{}, err
	}
	return entry, nil
}

func (repo *VitalsRepository) ListByUser(userID uint) ([]models.Vitals, error) {
	entries := make([]models.Vitals, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
