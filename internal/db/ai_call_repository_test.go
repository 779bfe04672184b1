package db

import (
	"testing"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
)

func TestAICallRepositoryCountOutcomesSince(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewAICallRepository(database)
	base := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	calls := []models.AICall{
		{Operation: "chat", Model: "m", Attempts: 1, Outcome: models.AICallOutcomeOK, CreatedAt: base},
		{Operation: "chat", Model: "m", Attempts: 3, Outcome: models.AICallOutcomeOK, CreatedAt: base.Add(time.Hour)},
		{Operation: "vitals", Model: "m", Attempts: 3, Outcome: models.AICallOutcomeRateLimited, CreatedAt: base.Add(2 * time.Hour)},
		{Operation: "chat", Model: "m", Attempts: 1, Outcome: models.AICallOutcomeError, CreatedAt: base.Add(-48 * time.Hour)},
	}
	for index := range calls {
		if err := repo.Create(&calls[index]); err != nil {
			t.Fatalf("create call: %v", err)
		}
	}

	rows, err := repo.CountOutcomesSince(base.Add(-time.Minute))
	if err != nil {
		t.Fatalf("count outcomes: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 groups, got %d: %+v", len(rows), rows)
	}
	if rows[0].Operation != "chat" || rows[0].Calls != 2 || rows[0].Attempts != 4 {
		t.Fatalf("unexpected chat group: %+v", rows[0])
	}
	if rows[1].Operation != "vitals" || rows[1].Outcome != models.AICallOutcomeRateLimited || rows[1].Calls != 1 {
		t.Fatalf("unexpected vitals group: %+v", rows[1])
	}
}
