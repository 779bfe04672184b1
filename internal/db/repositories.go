package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Reports     *ReportRepository
	Vitals      *VitalsRepository
	Bills       *BillRepository
	CustomBills *CustomBillRepository
	Diets       *DietRepository
	AICalls     *AICallRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Reports:     NewReportRepository(database),
		Vitals:      NewVitalsRepository(database),
		Bills:       NewBillRepository(database),
		CustomBills: NewCustomBillRepository(database),
		Diets:       NewDietRepository(database),
		AICalls:     NewAICallRepository(database),
	}
}
