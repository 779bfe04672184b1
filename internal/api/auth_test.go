package api

import (
	"net/http"
	"testing"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
)

func TestRegisterReturnsVerifiableToken(t *testing.T) {
	ta := newTestApp(t)

	token, userID := ta.registerUser(t, "Patient@Example.com")
	claims, err := ta.tokens.Parse(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UserID != userID || claims.Email != "patient@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ta := newTestApp(t)
	ta.registerUser(t, "dup@example.com")

	response := ta.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Someone Else",
		"email":    "DUP@example.com",
		"password": "StrongPass1",
	})
	expectStatus(t, response, http.StatusConflict)
}

func TestRegisterValidation(t *testing.T) {
	ta := newTestApp(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "missing name", body: map[string]string{"email": "a@example.com", "password": "StrongPass1"}},
		{name: "invalid email", body: map[string]string{"name": "A", "email": "nope", "password": "StrongPass1"}},
		{name: "weak password", body: map[string]string{"name": "A", "email": "a@example.com", "password": "short"}},
		{name: "unknown language", body: map[string]string{"name": "A", "email": "a@example.com", "password": "StrongPass1", "language": "klingon"}},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			response := ta.doJSON(t, http.MethodPost, "/api/auth/register", "", testCase.body)
			expectStatus(t, response, http.StatusBadRequest)
		})
	}
}

func TestRegisterDetectsLanguageFromHeader(t *testing.T) {
	ta := newTestApp(t)

	request := ta.doJSONRequest(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Ali",
		"email":    "ali@example.com",
		"password": "StrongPass1",
	})
	request.Header.Set("Accept-Language", "ur-PK,ur;q=0.9,en;q=0.8")
	response := ta.do(t, request)
	expectStatus(t, response, http.StatusOK)

	user := models.User{}
	if err := ta.database.Where("email = ?", "ali@example.com").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.Language != "Urdu" {
		t.Fatalf("expected Urdu from Accept-Language, got %q", user.Language)
	}
}

func TestLoginFlow(t *testing.T) {
	ta := newTestApp(t)
	ta.registerUser(t, "login@example.com")

	response := ta.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "LOGIN@example.com",
		"password": "StrongPass1",
	})
	expectStatus(t, response, http.StatusOK)
	payload := struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}{}
	decodeJSONBody(t, response, &payload)
	if payload.Message != "Login success" || payload.Token == "" {
		t.Fatalf("unexpected login payload: %+v", payload)
	}

	for _, body := range []map[string]string{
		{"email": "login@example.com", "password": "WrongPass1"},
		{"email": "missing@example.com", "password": "StrongPass1"},
	} {
		response := ta.doJSON(t, http.MethodPost, "/api/auth/login", "", body)
		expectStatus(t, response, http.StatusUnauthorized)
		if message := readAPIError(t, response); message != "invalid credentials" {
			t.Fatalf("expected generic credentials error, got %q", message)
		}
	}
}

func TestLoginIsRateLimitedAfterRepeatedFailures(t *testing.T) {
	ta := newTestApp(t)
	ta.registerUser(t, "limited@example.com")

	for attempt := 0; attempt < loginAttemptLimit; attempt++ {
		response := ta.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "limited@example.com",
			"password": "WrongPass1",
		})
		expectStatus(t, response, http.StatusUnauthorized)
	}

	response := ta.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "limited@example.com",
		"password": "StrongPass1",
	})
	expectStatus(t, response, http.StatusTooManyRequests)
}
