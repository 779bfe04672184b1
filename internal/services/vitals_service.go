package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/ai"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"gorm.io/gorm"
)

var (
	ErrVitalsEmpty         = errors.New("vitals empty")
	ErrVitalsBloodPressure = errors.New("vitals blood pressure invalid")
	ErrVitalsValueInvalid  = errors.New("vitals value invalid")
	ErrVitalsNotFound      = errors.New("vitals not found")
	ErrVitalsForbidden     = errors.New("vitals forbidden")
)

var bloodPressurePattern = regexp.MustCompile(`^(\d{2,3})\s*/\s*(\d{2,3})$`)

const maxNotesRunes = 2000

type VitalsRepository interface {
	Create(entry *models.Vitals) error
	FindByID(vitalsID uint) (models.Vitals, error)
	ListByUser(userID uint) ([]models.Vitals, error)
}

type VitalsAnalyzer interface {
	Enabled() bool
	AnalyzeVitals(ctx context.Context, vitals ai.VitalsInput, locale ai.Locale) (models.HealthAnalysis, error)
}

type VitalsInput struct {
	BloodPressure string
	Sugar         float64
	Weight        float64
	Notes         string
}

type VitalsService struct {
	vitals   VitalsRepository
	analyzer VitalsAnalyzer
}

func NewVitalsService(vitals VitalsRepository, analyzer VitalsAnalyzer) *VitalsService {
	return &VitalsService{vitals: vitals, analyzer: analyzer}
}

func NormalizeVitalsInput(input VitalsInput) (VitalsInput, error) {
	input.BloodPressure = strings.TrimSpace(input.BloodPressure)
	input.Notes = strings.TrimSpace(input.Notes)

	if input.BloodPressure != "" {
		match := bloodPressurePattern.FindStringSubmatch(input.BloodPressure)
		if match == nil {
			return VitalsInput{}, ErrVitalsBloodPressure
		}
		input.BloodPressure = match[1] + "/" + match[2]
	}
	for _, value := range []float64{input.Sugar, input.Weight} {
		if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return VitalsInput{}, ErrVitalsValueInvalid
		}
	}
	if runes := []rune(input.Notes); len(runes) > maxNotesRunes {
		input.Notes = string(runes[:maxNotesRunes])
	}
	if input.BloodPressure == "" && input.Sugar == 0 && input.Weight == 0 && input.Notes == "" {
		return VitalsInput{}, ErrVitalsEmpty
	}
	return input, nil
}

func (service *VitalsService) Add(ctx context.Context, user models.User, raw VitalsInput) (models.Vitals, error) {
	input, err := NormalizeVitalsInput(raw)
	if err != nil {
		return models.Vitals{}, err
	}

	locale := localeFor(user)
	analysis := healthAnalysisFor(ctx, "vitals add", models.AnalysisKindVitals, service.analyzer.Enabled(), func(ctx context.Context) (models.HealthAnalysis, error) {
		return service.analyzer.AnalyzeVitals(ctx, ai.VitalsInput{
			BloodPressure: input.BloodPressure,
			Sugar:         input.Sugar,
			Weight:        input.Weight,
			Notes:         input.Notes,
		}, locale)
	})

	entry := models.Vitals{
		UserID:        user.ID,
		BloodPressure: input.BloodPressure,
		Sugar:         input.Sugar,
		Weight:        input.Weight,
		Notes:         input.Notes,
		AIResult:      analysis.Summary,
		Analysis:      analysis,
		Language:      locale.Language,
	}
	if err := service.vitals.Create(&entry); err != nil {
		return models.Vitals{}, fmt.Errorf("create vitals: %w", err)
	}
	return entry, nil
}

func (service *VitalsService) List(userID uint) ([]models.Vitals, error) {
	return service.vitals.ListByUser(userID)
}

func (service *VitalsService) Get(userID uint, vitalsID uint) (models.Vitals, error) {
	entry, err := service.vitals.FindByID(vitalsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Vitals{}, ErrVitalsNotFound
		}
		return models.Vitals{}, err
	}
	if entry.UserID != userID {
		return models.Vitals{}, ErrVitalsForbidden
	}
	return entry, nil
}
