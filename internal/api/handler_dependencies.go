package api

import (
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/ai"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/db"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB, options Options) *Handler {
	repositories := db.NewRepositories(database)

	handler.aiUsageService = services.NewAIUsageService(repositories.AICalls)
	analyzer := ai.NewAnalyzer(options.Completer, options.Retry, handler.aiUsageService)

	handler.authService = services.NewAuthService(repositories.Users, options.Tokens, options.Languages.DefaultLanguage(), options.DefaultCountry)
	handler.settingsService = services.NewSettingsService(repositories.Users, options.Languages)
	handler.reportService = services.NewReportService(repositories.Reports, options.Uploader, analyzer)
	handler.vitalsService = services.NewVitalsService(repositories.Vitals, analyzer)
	handler.billService = services.NewBillService(repositories.Bills, repositories.CustomBills, options.Uploader, analyzer)
	handler.dietService = services.NewDietService(repositories.Diets, analyzer)
	handler.chatService = services.NewChatService(repositories.Reports, analyzer)
	return handler
}
