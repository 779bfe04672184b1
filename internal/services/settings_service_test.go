package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
)

type stubLanguageCatalog map[string]string

func (catalog stubLanguageCatalog) NormalizeLanguage(raw string) (string, bool) {
	name, ok := catalog[strings.ToLower(strings.TrimSpace(raw))]
	return name, ok
}

func testLanguages() stubLanguageCatalog {
	return stubLanguageCatalog{"ur": "Urdu", "urdu": "Urdu", "en": "English", "english": "English"}
}

func strPtr(value string) *string {
	return &value
}

func TestSettingsServiceUpdatePreferences(t *testing.T) {
	users := newStubUserRepo()
	service := NewSettingsService(users, testLanguages())
	user := models.User{ID: 7, Language: "English", Country: "Pakistan"}

	updated, err := service.UpdatePreferences(user, PreferencesInput{Language: strPtr("ur"), Country: strPtr("  United   Kingdom ")})
	if err != nil {
		t.Fatalf("UpdatePreferences() unexpected error: %v", err)
	}
	if updated.Language != "Urdu" || updated.Country != "United Kingdom" {
		t.Fatalf("unexpected preferences: %q/%q", updated.Language, updated.Country)
	}
	if users.updatedLanguage != "Urdu" || users.updatedCountry != "United Kingdom" {
		t.Fatalf("expected persisted preferences, got %q/%q", users.updatedLanguage, users.updatedCountry)
	}
}

func TestSettingsServiceUpdatePreferencesKeepsMissingFields(t *testing.T) {
	users := newStubUserRepo()
	service := NewSettingsService(users, testLanguages())
	user := models.User{ID: 7, Language: "English", Country: "Pakistan"}

	updated, err := service.UpdatePreferences(user, PreferencesInput{Country: strPtr("India")})
	if err != nil {
		t.Fatalf("UpdatePreferences() unexpected error: %v", err)
	}
	if updated.Language != "English" || updated.Country != "India" {
		t.Fatalf("unexpected preferences: %q/%q", updated.Language, updated.Country)
	}
}

func TestSettingsServiceUpdatePreferencesRejectsInvalidValues(t *testing.T) {
	users := newStubUserRepo()
	service := NewSettingsService(users, testLanguages())
	user := models.User{ID: 7}

	if _, err := service.UpdatePreferences(user, PreferencesInput{Language: strPtr("klingon")}); !errors.Is(err, ErrSettingsLanguageInvalid) {
		t.Fatalf("expected ErrSettingsLanguageInvalid, got %v", err)
	}
	if _, err := service.UpdatePreferences(user, PreferencesInput{Country: strPtr("  ")}); !errors.Is(err, ErrSettingsCountryInvalid) {
		t.Fatalf("expected ErrSettingsCountryInvalid, got %v", err)
	}
	if _, err := service.UpdatePreferences(user, PreferencesInput{Country: strPtr(strings.Repeat("x", 65))}); !errors.Is(err, ErrSettingsCountryInvalid) {
		t.Fatalf("expected ErrSettingsCountryInvalid for long country, got %v", err)
	}
	if users.updatePrefsCalls != 0 {
		t.Fatalf("expected no writes for invalid input, got %d", users.updatePrefsCalls)
	}
}
