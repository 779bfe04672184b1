package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/ai"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/documents"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
)

const (
	AIUnavailableMessage     = "AI analysis not available."
	AIProcessingErrorMessage = "AI processing error."
)

var (
	ErrAIUnavailable       = errors.New("ai unavailable")
	ErrAIUpstream          = errors.New("ai upstream failure")
	ErrFileRequired        = errors.New("file required")
	ErrFileTypeUnsupported = errors.New("file type unsupported")
)

func localeFor(user models.User) ai.Locale {
	language := strings.TrimSpace(user.Language)
	if language == "" {
		language = models.DefaultLanguage
	}
	country := strings.TrimSpace(user.Country)
	if country == "" {
		country = models.DefaultCountry
	}
	return ai.Locale{Language: language, Country: country}
}

// documentKind classifies an upload as pdf or image; anything else is rejected
// before it is stored.
func documentKind(contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrFileRequired
	}
	if documents.IsPDF(contentType, data) {
		return documents.MimePDF, nil
	}
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/") {
		return "image", nil
	}
	return "", ErrFileTypeUnsupported
}

func unavailableHealthAnalysis(kind models.AnalysisKind) models.HealthAnalysis {
	return models.HealthAnalysis{Kind: kind, Summary: AIUnavailableMessage, Degraded: true}
}

func failedHealthAnalysis(kind models.AnalysisKind, err error) models.HealthAnalysis {
	return models.HealthAnalysis{Kind: kind, Summary: AIProcessingErrorMessage, Degraded: true, Error: err.Error()}
}

// healthAnalysisFor absorbs every AI failure so the parent record is still written.
func healthAnalysisFor(ctx context.Context, operation string, kind models.AnalysisKind, enabled bool, call func(context.Context) (models.HealthAnalysis, error)) models.HealthAnalysis {
	if !enabled {
		return unavailableHealthAnalysis(kind)
	}
	analysis, err := call(ctx)
	if err != nil {
		if errors.Is(err, ai.ErrDisabled) {
			return unavailableHealthAnalysis(kind)
		}
		log.Printf("%s: analysis degraded: %v", operation, err)
		return failedHealthAnalysis(kind, err)
	}
	return analysis
}
