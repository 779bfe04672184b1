package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc.def", want: "abc.def", ok: true},
		{header: "bearer   abc ", want: "abc", ok: true},
		{header: "Bearer", ok: false},
		{header: "Bearer ", ok: false},
		{header: "Basic abc", ok: false},
		{header: "", ok: false},
	}
	for _, testCase := range tests {
		got, ok := bearerToken(testCase.header)
		if ok != testCase.ok || got != testCase.want {
			t.Fatalf("bearerToken(%q) = %q, %t; want %q, %t", testCase.header, got, ok, testCase.want, testCase.ok)
		}
	}
}

func TestAuthRequiredRejectsMissingOrInvalidTokens(t *testing.T) {
	ta := newTestApp(t)

	response := ta.doJSON(t, http.MethodGet, "/api/users/dashboard", "", nil)
	expectStatus(t, response, http.StatusUnauthorized)

	response = ta.doJSON(t, http.MethodGet, "/api/users/dashboard", "not-a-jwt", nil)
	expectStatus(t, response, http.StatusUnauthorized)
}

func TestAuthRequiredRejectsTokenForDeletedUser(t *testing.T) {
	ta := newTestApp(t)
	token, userID := ta.registerUser(t, "gone@example.com")

	if err := ta.database.Exec("DELETE FROM users WHERE id = ?", userID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}
	response := ta.doJSON(t, http.MethodGet, "/api/users/dashboard", token, nil)
	expectStatus(t, response, http.StatusUnauthorized)
}

func TestHealthAndNotFound(t *testing.T) {
	ta := newTestApp(t)

	response := ta.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	expectStatus(t, response, http.StatusOK)
	payload := map[string]string{}
	decodeJSONBody(t, response, &payload)
	if payload["status"] != "ok" {
		t.Fatalf("unexpected health payload: %#v", payload)
	}

	response = ta.do(t, httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil))
	expectStatus(t, response, http.StatusNotFound)
	if message := readAPIError(t, response); message == "" {
		t.Fatal("expected error message for unknown route")
	}
}
