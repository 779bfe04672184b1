package models

import "time"

const (
	DietStatusActive    = "active"
	DietStatusCompleted = "completed"
	DietStatusCancelled = "cancelled"
)

// DietPlanDays is the length of every plan in the catalog.
const DietPlanDays = 10

type DietDay struct {
	Day         int    `json:"day"`
	Breakfast   string `json:"breakfast"`
	Lunch       string `json:"lunch"`
	Dinner      string `json:"dinner"`
	Snack       string `json:"snack"`
	Instruction string `json:"instruction"`
}

type DietPlan struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `gorm:"not null" json:"description"`
	Category      string    `gorm:"not null" json:"category"`
	Benefits      []string  `gorm:"serializer:json" json:"benefits"`
	Pros          []string  `gorm:"serializer:json" json:"pros"`
	Cons          []string  `gorm:"serializer:json" json:"cons"`
	Days          []DietDay `gorm:"serializer:json" json:"days,omitempty"`
	IsAIGenerated bool      `gorm:"column:is_ai_generated;not null;default:false" json:"isAiGenerated"`
	CreatedAt     time.Time `json:"createdAt"`
}

type UserDiet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	PlanID    uint      `gorm:"not null" json:"planId"`
	Plan      *DietPlan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	Status    string    `gorm:"not null;default:active" json:"status"`
	Progress  int       `gorm:"not null;default:1" json:"progress"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
