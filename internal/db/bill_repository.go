package db

import (
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"gorm.io/gorm"
)

type BillRepository struct {
	database *gorm.DB
}

func NewBillRepository(database *gorm.DB) *BillRepository {
	return &BillRepository{database: database}
}

func (repo *BillRepository) Create(bill *models.Bill) error {
	return repo.database.Create(bill).Error
}

func (repo *BillRepository) FindByID(billID uint) (models.Bill, error) {
	var bill models.Bill
	if err := repo.database.First(&bill, billID).Error; err != nil {
		return models.Bill{}, err
	}
	return bill, nil
}

func (repo *BillRepository) ListByUser(userID uint) ([]models.Bill, error) {
	bills := make([]models.Bill, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

type CustomBillRepository struct {
	database *gorm.DB
}

func NewCustomBillRepository(database *gorm.DB) *CustomBillRepository {
	return &CustomBillRepository{database: database}
}

func (repo *CustomBillRepository) Create(bill *models.CustomBill) error {
	return repo.database.Create(bill).Error
}

func (repo *CustomBillRepository) ListByUser(userID uint) ([]models.CustomBill, error) {
	bills := make([]models.CustomBill, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}
