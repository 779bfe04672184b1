package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
)

func TestNormalizeVitalsInput(t *testing.T) {
	normalized, err := NormalizeVitalsInput(VitalsInput{BloodPressure: " 120 / 80 ", Sugar: 95, Notes: "  fasting  "})
	if err != nil {
		t.Fatalf("NormalizeVitalsInput() unexpected error: %v", err)
	}
	if normalized.BloodPressure != "120/80" || normalized.Notes != "fasting" {
		t.Fatalf("unexpected normalized input: %+v", normalized)
	}

	tests := []struct {
		name  string
		input VitalsInput
		want  error
	}{
		{name: "empty", input: VitalsInput{Notes: "  "}, want: ErrVitalsEmpty},
		{name: "bad blood pressure", input: VitalsInput{BloodPressure: "high"}, want: ErrVitalsBloodPressure},
		{name: "negative sugar", input: VitalsInput{Sugar: -1}, want: ErrVitalsValueInvalid},
		{name: "nan weight", input: VitalsInput{Weight: math.NaN()}, want: ErrVitalsValueInvalid},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := NormalizeVitalsInput(testCase.input); !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
		})
	}
}

func TestVitalsServiceAddStoresSummary(t *testing.T) {
	repo := &stubVitalsRepo{}
	analyzer := &stubAnalyzer{health: models.HealthAnalysis{Kind: models.AnalysisKindVitals, Summary: "Blood pressure is normal."}}
	service := NewVitalsService(repo, analyzer)

	entry, err := service.Add(context.Background(), models.User{ID: 2}, VitalsInput{BloodPressure: "120/80", Weight: 70})
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if entry.AIResult != "Blood pressure is normal." || entry.UserID != 2 {
		t.Fatalf("unexpected vitals entry: %+v", entry)
	}
	if entry.Language != models.DefaultLanguage {
		t.Fatalf("expected default language, got %q", entry.Language)
	}
}

func TestVitalsServiceAddDegradesOnAIFailure(t *testing.T) {
	repo := &stubVitalsRepo{}
	service := NewVitalsService(repo, &stubAnalyzer{err: errors.New("boom")})

	entry, err := service.Add(context.Background(), models.User{ID: 2}, VitalsInput{Sugar: 110})
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if entry.AIResult != AIProcessingErrorMessage {
		t.Fatalf("expected processing error summary, got %q", entry.AIResult)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected vitals to be persisted, got %d", len(repo.entries))
	}
}

func TestVitalsServiceAddWithAIDisabled(t *testing.T) {
	repo := &stubVitalsRepo{}
	service := NewVitalsService(repo, &stubAnalyzer{disabled: true})

	entry, err := service.Add(context.Background(), models.User{ID: 2}, VitalsInput{Weight: 80})
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if entry.AIResult != AIUnavailableMessage {
		t.Fatalf("expected unavailable summary, got %q", entry.AIResult)
	}

	list, err := service.List(2)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].AIResult != AIUnavailableMessage {
		t.Fatalf("expected stored entry in list, got %+v", list)
	}
}

func TestVitalsServiceGetChecksOwnership(t *testing.T) {
	repo := &stubVitalsRepo{}
	_ = repo.Create(&models.Vitals{UserID: 1})
	service := NewVitalsService(repo, &stubAnalyzer{})

	if _, err := service.Get(2, 1); !errors.Is(err, ErrVitalsForbidden) {
		t.Fatalf("expected ErrVitalsForbidden, got %v", err)
	}
	if _, err := service.Get(1, 5); !errors.Is(err, ErrVitalsNotFound) {
		t.Fatalf("expected ErrVitalsNotFound, got %v", err)
	}
}
