package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = "8080"
	defaultModel        = "gemini-2.5-flash"
	defaultClientURL    = "http://localhost:5173"
	defaultRetryDelay   = 2 * time.Second
	defaultRetryCount   = 3
	defaultMaxUploadMB  = 10
	minSecretKeyLength  = 32
	maxAllowedUploadMB  = 100
	maxAllowedRetryRuns = 10
)

var insecureSecretPlaceholders = []string{
	"change_me_in_production",
	"replace_with_at_least_32_random_characters",
	"your_jwt_secret",
	"secret",
}

type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
}

func (cloud Cloudinary) Enabled() bool {
	return cloud.CloudName != "" && cloud.APIKey != "" && cloud.APISecret != ""
}

type AI struct {
	APIKey        string
	Model         string
	RetryAttempts int
	RetryDelay    time.Duration
}

func (settings AI) Enabled() bool {
	return settings.APIKey != ""
}

type Config struct {
	Port            string
	DBPath          string
	SecretKey       string
	UploadDir       string
	ClientURLs      []string
	DefaultLanguage string
	DefaultCountry  string
	MaxUploadBytes  int
	Cloudinary      Cloudinary
	AI              AI
}

// Load reads the process environment, after an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	secretKey, err := resolveSecretKey()
	if err != nil {
		return Config{}, err
	}
	port, err := resolvePort()
	if err != nil {
		return Config{}, err
	}
	retryAttempts, err := resolveBoundedInt("AI_RETRY_ATTEMPTS", defaultRetryCount, 1, maxAllowedRetryRuns)
	if err != nil {
		return Config{}, err
	}
	retryDelay, err := resolveDuration("AI_RETRY_DELAY", defaultRetryDelay)
	if err != nil {
		return Config{}, err
	}
	maxUploadMB, err := resolveBoundedInt("MAX_UPLOAD_MB", defaultMaxUploadMB, 1, maxAllowedUploadMB)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:            port,
		DBPath:          firstEnv(filepath.Join("data", "mediai.db"), "DB_PATH", "DATABASE_URL"),
		SecretKey:       secretKey,
		UploadDir:       getEnv("UPLOAD_DIR", filepath.Join("data", "uploads")),
		ClientURLs:      splitList(getEnv("CLIENT_URLS", defaultClientURL)),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "English"),
		DefaultCountry:  getEnv("DEFAULT_COUNTRY", "Pakistan"),
		MaxUploadBytes:  maxUploadMB * 1024 * 1024,
		Cloudinary: Cloudinary{
			CloudName: strings.TrimSpace(os.Getenv("CLOUDINARY_CLOUD_NAME")),
			APIKey:    strings.TrimSpace(os.Getenv("CLOUDINARY_API_KEY")),
			APISecret: strings.TrimSpace(os.Getenv("CLOUDINARY_API_SECRET")),
		},
		AI: AI{
			APIKey:        strings.TrimSpace(firstEnv("", "GEMINI_API_KEY", "GOOGLE_API_KEY")),
			Model:         getEnv("GEMINI_MODEL", defaultModel),
			RetryAttempts: retryAttempts,
			RetryDelay:    retryDelay,
		},
	}, nil
}

// DBPath is used by operator commands that only need the database.
func DBPath() string {
	_ = godotenv.Load()
	return firstEnv(filepath.Join("data", "mediai.db"), "DB_PATH", "DATABASE_URL")
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(firstEnv("", "JWT_SECRET", "SECRET_KEY"))
	if secret == "" {
		return "", errors.New("JWT_SECRET is required")
	}
	for _, placeholder := range insecureSecretPlaceholders {
		if strings.EqualFold(secret, placeholder) {
			return "", errors.New("JWT_SECRET uses an insecure placeholder value")
		}
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("JWT_SECRET must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := strings.TrimSpace(getEnv("PORT", defaultPort))
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveBoundedInt(key string, fallback int, minimum int, maximum int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < minimum || value > maximum {
		return 0, fmt.Errorf("invalid %s %q: expected %d..%d", key, raw, minimum, maximum)
	}
	return value, nil
}

// resolveDuration accepts Go durations ("2s") and bare milliseconds ("2000").
func resolveDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	if millis, err := strconv.Atoi(raw); err == nil && millis >= 0 {
		return time.Duration(millis) * time.Millisecond, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return value, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func firstEnv(fallback string, keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimRight(strings.TrimSpace(part), "/")
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
