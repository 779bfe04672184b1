package services

import (
	"context"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
)

const DefaultAIUsageWindow = 7 * 24 * time.Hour

type AICallRepository interface {
	Create(call *models.AICall) error
	CountOutcomesSince(since time.Time) ([]models.AICallOutcomeCount, error)
}

type AIUsageSummary struct {
	Since    time.Time                   `json:"since"`
	Total    int64                       `json:"total"`
	Outcomes []models.AICallOutcomeCount `json:"outcomes"`
}

// AIUsageService stores AI call telemetry and reports outcome counts.
type AIUsageService struct {
	calls AICallRepository
	now   func() time.Time
}

func NewAIUsageService(calls AICallRepository) *AIUsageService {
	return &AIUsageService{calls: calls, now: time.Now}
}

func (service *AIUsageService) RecordCall(_ context.Context, call models.AICall) error {
	if call.CreatedAt.IsZero() {
		call.CreatedAt = service.now()
	}
	return service.calls.Create(&call)
}

func (service *AIUsageService) Summary(window time.Duration) (AIUsageSummary, error) {
	if window <= 0 {
		window = DefaultAIUsageWindow
	}
	since := service.now().Add(-window)

	outcomes, err := service.calls.CountOutcomesSince(since)
	if err != nil {
		return AIUsageSummary{}, err
	}
	var total int64
	for _, outcome := range outcomes {
		total += outcome.Calls
	}
	return AIUsageSummary{Since: since, Total: total, Outcomes: outcomes}, nil
}
