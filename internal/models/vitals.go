package models

import "time"

type Vitals struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"not null;index" json:"userId"`
	BloodPressure string         `gorm:"column:bp;not null" json:"bp"`
	Sugar         float64        `gorm:"not null" json:"sugar"`
	Weight        float64        `gorm:"not null" json:"weight"`
	Notes         string         `gorm:"not null" json:"notes"`
	AIResult      string         `gorm:"column:ai_result;not null" json:"aiResult"`
	Analysis      HealthAnalysis `gorm:"column:structured_data;serializer:json" json:"structuredData"`
	Language      string         `gorm:"not null;default:English" json:"language"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// TableName keeps the plural table name for the uncountable model name.
func (Vitals) TableName() string {
	return "vitals"
}
