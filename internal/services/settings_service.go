package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
)

var (
	ErrSettingsLanguageInvalid = errors.New("settings language invalid")
	ErrSettingsCountryInvalid  = errors.New("settings country invalid")
)

const maxCountryRunes = 64

type SettingsUserRepository interface {
	UpdatePreferences(userID uint, language string, country string) error
	UpdatePassword(userID uint, passwordHash string) error
}

type LanguageCatalog interface {
	NormalizeLanguage(raw string) (string, bool)
}

type PreferencesInput struct {
	Language *string
	Country  *string
}

type SettingsService struct {
	users     SettingsUserRepository
	languages LanguageCatalog
}

func NewSettingsService(users SettingsUserRepository, languages LanguageCatalog) *SettingsService {
	return &SettingsService{users: users, languages: languages}
}

// UpdatePreferences leaves fields that are not provided unchanged.
func (service *SettingsService) UpdatePreferences(user models.User, input PreferencesInput) (models.User, error) {
	language := user.Language
	if input.Language != nil {
		normalized, ok := service.languages.NormalizeLanguage(*input.Language)
		if !ok {
			return models.User{}, ErrSettingsLanguageInvalid
		}
		language = normalized
	}

	country := user.Country
	if input.Country != nil {
		trimmed := strings.Join(strings.Fields(*input.Country), " ")
		if trimmed == "" || utf8.RuneCountInString(trimmed) > maxCountryRunes {
			return models.User{}, ErrSettingsCountryInvalid
		}
		country = trimmed
	}

	if err := service.users.UpdatePreferences(user.ID, language, country); err != nil {
		return models.User{}, err
	}
	user.Language = language
	user.Country = country
	return user, nil
}
