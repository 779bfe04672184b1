package api

import (
	"errors"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/ai"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/i18n"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/security"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/services"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/storage"
	"gorm.io/gorm"
)

// Options carries the collaborators that are chosen at startup.
// A nil Completer leaves AI analysis disabled.
type Options struct {
	Tokens         *security.TokenIssuer
	Uploader       storage.Uploader
	Completer      ai.Completer
	Retry          ai.RetryPolicy
	Languages      *i18n.Manager
	DefaultCountry string
}

type Handler struct {
	tokens          *security.TokenIssuer
	languages       *i18n.Manager
	authService     *services.AuthService
	settingsService *services.SettingsService
	reportService   *services.ReportService
	vitalsService   *services.VitalsService
	billService     *services.BillService
	dietService     *services.DietService
	chatService     *services.ChatService
	aiUsageService  *services.AIUsageService
	loginLimiter    *attemptLimiter
	now             func() time.Time
}

func NewHandler(database *gorm.DB, options Options) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if options.Tokens == nil {
		return nil, errors.New("token issuer is required")
	}
	if options.Uploader == nil {
		return nil, errors.New("uploader is required")
	}
	if options.Languages == nil {
		return nil, errors.New("language catalog is required")
	}

	handler := &Handler{
		tokens:       options.Tokens,
		languages:    options.Languages,
		loginLimiter: newAttemptLimiter(loginAttemptLimit, loginAttemptWindow),
		now:          time.Now,
	}
	return handler.withDependencies(database, options), nil
}
