package models

import "time"

const (
	DefaultLanguage = "English"
	DefaultCountry  = "Pakistan"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Language     string    `gorm:"not null;default:English" json:"language"`
	Country      string    `gorm:"not null;default:Pakistan" json:"country"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
