package models

import "time"

type Report struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"userId"`
	FileURL    string         `gorm:"column:file_url;not null" json:"fileUrl"`
	FileName   string         `gorm:"not null" json:"fileName"`
	MimeType   string         `gorm:"not null" json:"mimeType"`
	ReportType string         `gorm:"not null" json:"reportType"`
	ReportDate *time.Time     `json:"reportDate"`
	AISummary  string         `gorm:"column:ai_summary;not null" json:"aiSummary"`
	Analysis   HealthAnalysis `gorm:"column:structured_data;serializer:json" json:"structuredData"`
	Language   string         `gorm:"not null;default:English" json:"language"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
