package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/ai"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/db"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/i18n"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/security"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/storage"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const testSecretKey = "test-secret-key-for-mediai-api-tests-0123456789"

// replyCompleter answers every prompt through reply.
type replyCompleter struct {
	mu      sync.Mutex
	reply   func(request ai.Request) (string, error)
	prompts []string
}

func (completer *replyCompleter) Complete(_ context.Context, request ai.Request) (ai.Response, error) {
	completer.mu.Lock()
	defer completer.mu.Unlock()

	completer.prompts = append(completer.prompts, request.Prompt)
	text, err := completer.reply(request)
	if err != nil {
		return ai.Response{}, err
	}
	return ai.Response{Text: text, Model: "test-model"}, nil
}

func (completer *replyCompleter) Model() string {
	return "test-model"
}

type testApp struct {
	app      *fiber.App
	database *gorm.DB
	tokens   *security.TokenIssuer
}

func newTestApp(t *testing.T) testApp {
	t.Helper()
	return newTestAppWithCompleter(t, nil)
}

func newTestAppWithCompleter(t *testing.T, completer ai.Completer) testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "mediai-api-test.db"))
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

	languages, err := i18n.NewManager("English")
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}
	tokens := security.NewTokenIssuer(testSecretKey, time.Hour)

	handler, err := NewHandler(database, Options{
		Tokens:    tokens,
		Uploader:  storage.NewLocalUploader(filepath.Join(t.TempDir(), "uploads")),
		Completer: completer,
		Retry: ai.RetryPolicy{
			Attempts: ai.DefaultRetryAttempts,
			Sleep:    func(context.Context, time.Duration) error { return nil },
		},
		Languages:      languages,
		DefaultCountry: "Pakistan",
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return testApp{app: app, database: database, tokens: tokens}
}

func (ta testApp) do(t *testing.T, request *http.Request) *http.Response {
	t.Helper()

	response, err := ta.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func (ta testApp) doJSON(t *testing.T, method string, path string, token string, body any) *http.Response {
	t.Helper()
	return ta.do(t, ta.doJSONRequest(t, method, path, token, body))
}

func (ta testApp) doJSONRequest(t *testing.T, method string, path string, token string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return request
}

type multipartFile struct {
	field       string
	name        string
	contentType string
	data        []byte
}

func (ta testApp) doMultipart(t *testing.T, path string, token string, file *multipartFile, fields map[string]string) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if file != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+file.field+`"; filename="`+file.name+`"`)
		header.Set("Content-Type", file.contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(file.data); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, path, body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return ta.do(t, request)
}

func (ta testApp) registerUser(t *testing.T, email string) (string, uint) {
	t.Helper()

	response := ta.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Test Patient",
		"email":    email,
		"password": "StrongPass1",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected register status 200, got %d", response.StatusCode)
	}
	payload := struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}{}
	decodeJSONBody(t, response, &payload)
	if payload.Token == "" || payload.User.ID == 0 {
		t.Fatalf("expected token and user id, got %+v", payload)
	}
	return payload.Token, payload.User.ID
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSONBody(t, response, &payload)
	return payload["error"]
}

func expectStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", want, response.StatusCode, string(raw))
	}
}

func testPNGBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x07}, 256)...)
}
