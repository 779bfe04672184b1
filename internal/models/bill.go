package models

import "time"

const (
	DefaultBillType     = "Other"
	DefaultBillCategory = "Electricity"
)

type Bill struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"userId"`
	FileURL     string     `gorm:"column:file_url;not null" json:"fileUrl"`
	BillType    string     `gorm:"not null;default:Other" json:"billType"`
	BillDate    *time.Time `json:"billDate"`
	TotalAmount float64    `gorm:"not null" json:"totalAmount"`
	Taxes       []TaxLine  `gorm:"serializer:json" json:"taxes"`
	AISummary   string     `gorm:"column:ai_summary;not null" json:"aiSummary"`
	Analysis    string     `gorm:"not null" json:"analysis"`
	Suggestions []string   `gorm:"serializer:json" json:"suggestions"`
	GraphData   *ChartData `gorm:"serializer:json" json:"graphData"`
	AIError     string     `gorm:"column:ai_error;not null" json:"aiError,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type CustomBill struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index" json:"userId"`
	BillCategory    string     `gorm:"not null;default:Electricity" json:"billCategory"`
	TotalUnits      float64    `gorm:"not null" json:"totalUnits"`
	PreviousAmount  float64    `gorm:"not null" json:"previousAmount"`
	CurrentAmount   float64    `gorm:"not null" json:"currentAmount"`
	Taxes           []TaxLine  `gorm:"serializer:json" json:"taxes"`
	Notes           string     `gorm:"not null" json:"notes"`
	AISuggestion    string     `gorm:"column:ai_suggestion;not null" json:"aiSuggestion"`
	SavingsEstimate float64    `gorm:"not null" json:"savingsEstimate"`
	GraphData       *ChartData `gorm:"serializer:json" json:"graphData"`
	CreatedAt       time.Time  `json:"createdAt"`
}
