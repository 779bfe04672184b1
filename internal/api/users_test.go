package api

import (
	"net/http"
	"testing"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
)

func TestDashboardReturnsCurrentUser(t *testing.T) {
	ta := newTestApp(t)
	token, userID := ta.registerUser(t, "dash@example.com")

	response := ta.doJSON(t, http.MethodGet, "/api/users/dashboard", token, nil)
	expectStatus(t, response, http.StatusOK)
	payload := struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}{}
	decodeJSONBody(t, response, &payload)
	if payload.Message != "Welcome to dashboard" || payload.User.ID != userID {
		t.Fatalf("unexpected dashboard payload: %+v", payload)
	}
	if payload.User.Language != models.DefaultLanguage || payload.User.Country != models.DefaultCountry {
		t.Fatalf("expected default preferences, got %+v", payload.User)
	}
}

func TestUpdateSettings(t *testing.T) {
	ta := newTestApp(t)
	token, _ := ta.registerUser(t, "settings@example.com")

	response := ta.doJSON(t, http.MethodPost, "/api/users/settings", token, map[string]string{
		"language": "ur",
		"country":  "  United   Arab Emirates ",
	})
	expectStatus(t, response, http.StatusOK)
	payload := struct {
		User models.User `json:"user"`
	}{}
	decodeJSONBody(t, response, &payload)
	if payload.User.Language != "Urdu" || payload.User.Country != "United Arab Emirates" {
		t.Fatalf("unexpected settings: %+v", payload.User)
	}

	expectStatus(t, ta.doJSON(t, http.MethodPost, "/api/users/settings", token, map[string]string{"language": "elvish"}), http.StatusBadRequest)
}

func TestChangePassword(t *testing.T) {
	ta := newTestApp(t)
	token, _ := ta.registerUser(t, "password@example.com")

	response := ta.doJSON(t, http.MethodPost, "/api/users/password", token, map[string]string{
		"currentPassword": "WrongPass1",
		"newPassword":     "EvenStronger2",
		"confirmPassword": "EvenStronger2",
	})
	expectStatus(t, response, http.StatusUnauthorized)

	response = ta.doJSON(t, http.MethodPost, "/api/users/password", token, map[string]string{
		"currentPassword": "StrongPass1",
		"newPassword":     "EvenStronger2",
		"confirmPassword": "Mismatch2",
	})
	expectStatus(t, response, http.StatusBadRequest)

	response = ta.doJSON(t, http.MethodPost, "/api/users/password", token, map[string]string{
		"currentPassword": "StrongPass1",
		"newPassword":     "EvenStronger2",
		"confirmPassword": "EvenStronger2",
	})
	expectStatus(t, response, http.StatusOK)

	response = ta.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "password@example.com",
		"password": "EvenStronger2",
	})
	expectStatus(t, response, http.StatusOK)
}
