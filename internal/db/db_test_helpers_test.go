package db

import (
	"path/filepath"
	"testing"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "mediai-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createTestUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{Name: "Test User", Email: email, PasswordHash: "hash", Language: models.DefaultLanguage, Country: models.DefaultCountry}
	if err := NewUserRepository(database).Create(&user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}
