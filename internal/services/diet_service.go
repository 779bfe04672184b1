package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/ai"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDietPlanNotFound          = errors.New("diet plan not found")
	ErrDietQueryRequired         = errors.New("diet query required")
	ErrDietSuggestionUnavailable = errors.New("diet suggestion unavailable")
	ErrDietStartConflict         = errors.New("another diet plan was activated concurrently")
)

const maxDietQueryRunes = 500

type DietRepository interface {
	CountPlans() (int64, error)
	ListPlans() ([]models.DietPlan, error)
	FindPlan(planID uint) (models.DietPlan, error)
	UpsertPlans(plans []models.DietPlan) (int, error)
	StartPlan(userID uint, planID uint, startedAt time.Time) (models.UserDiet, error)
	FindActive(userID uint) (models.UserDiet, bool, error)
	ListByUser(userID uint) ([]models.UserDiet, error)
	UpdateProgress(entryID uint, progress int, status string) error
}

type DietAnalyzer interface {
	Enabled() bool
	SuggestDiet(ctx context.Context, query string, plans []ai.DietCandidate) (ai.DietChoice, error)
}

type DietSuggestion struct {
	Plan   models.DietPlan `json:"suggestion"`
	Reason string          `json:"reason"`
}

type DietService struct {
	diets    DietRepository
	analyzer DietAnalyzer
	now      func() time.Time
}

func NewDietService(diets DietRepository, analyzer DietAnalyzer) *DietService {
	return &DietService{diets: diets, analyzer: analyzer, now: time.Now}
}

// Seed writes the built-in catalog, updating plans that already exist by name.
func (service *DietService) Seed() (int, error) {
	return service.diets.UpsertPlans(BuiltinDietPlans())
}

// ListPlans seeds the catalog on first use.
func (service *DietService) ListPlans() ([]models.DietPlan, error) {
	if err := service.ensureCatalog(); err != nil {
		return nil, err
	}
	return service.diets.ListPlans()
}

func (service *DietService) ensureCatalog() error {
	count, err := service.diets.CountPlans()
	if err != nil {
		return err
	}
	if count == 0 {
		if _, err := service.Seed(); err != nil {
			return fmt.Errorf("seed diet catalog: %w", err)
		}
	}
	return nil
}

func (service *DietService) GetPlan(planID uint) (models.DietPlan, error) {
	if err := service.ensureCatalog(); err != nil {
		return models.DietPlan{}, err
	}
	plan, err := service.diets.FindPlan(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DietPlan{}, ErrDietPlanNotFound
		}
		return models.DietPlan{}, err
	}
	return plan, nil
}

// Start cancels the user's active plan and activates planID.
func (service *DietService) Start(userID uint, planID uint) (models.UserDiet, error) {
	plan, err := service.GetPlan(planID)
	if err != nil {
		return models.UserDiet{}, err
	}

	entry, err := service.diets.StartPlan(userID, plan.ID, service.now())
	if err != nil {
		// A concurrent start for the same user trips the single-active index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.UserDiet{}, ErrDietStartConflict
		}
		return models.UserDiet{}, fmt.Errorf("start diet plan: %w", err)
	}
	entry.Plan = &plan
	return entry, nil
}

// Active returns nil when the user has no plan in progress. Progress is
// recomputed from the start date on every read, and a plan past its last
// day is marked completed.
func (service *DietService) Active(userID uint) (*models.UserDiet, error) {
	entry, found, err := service.diets.FindActive(userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	day := DietProgressDay(entry.StartDate, service.now())
	status := models.DietStatusActive
	if day > models.DietPlanDays {
		day = models.DietPlanDays
		status = models.DietStatusCompleted
	}

	if day != entry.Progress || status != entry.Status {
		if err := service.diets.UpdateProgress(entry.ID, day, status); err != nil {
			return nil, fmt.Errorf("update diet progress: %w", err)
		}
		entry.Progress = day
		entry.Status = status
	}
	if status != models.DietStatusActive {
		return nil, nil
	}
	return &entry, nil
}

// History lists every plan the user started, newest first. The active entry
// is settled first so an expired plan shows as completed.
func (service *DietService) History(userID uint) ([]models.UserDiet, error) {
	if _, err := service.Active(userID); err != nil {
		return nil, err
	}
	return service.diets.ListByUser(userID)
}

// DietProgressDay is the 1-based day of a plan started at startDate.
func DietProgressDay(startDate time.Time, now time.Time) int {
	elapsed := now.Sub(startDate)
	if elapsed < 0 {
		return 1
	}
	return int(elapsed/(24*time.Hour)) + 1
}

func (service *DietService) Suggest(ctx context.Context, query string) (DietSuggestion, error) {
	query = strings.Join(strings.Fields(query), " ")
	if query == "" {
		return DietSuggestion{}, ErrDietQueryRequired
	}
	if runes := []rune(query); len(runes) > maxDietQueryRunes {
		query = string(runes[:maxDietQueryRunes])
	}
	if !service.analyzer.Enabled() {
		return DietSuggestion{}, ErrAIUnavailable
	}

	plans, err := service.ListPlans()
	if err != nil {
		return DietSuggestion{}, err
	}
	candidates := make([]ai.DietCandidate, 0, len(plans))
	for _, plan := range plans {
		candidates = append(candidates, ai.DietCandidate{
			ID:          plan.ID,
			Name:        plan.Name,
			Category:    plan.Category,
			Description: plan.Description,
		})
	}

	choice, err := service.analyzer.SuggestDiet(ctx, query, candidates)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrNoJSONObject):
			return DietSuggestion{}, ErrDietSuggestionUnavailable
		case errors.Is(err, ai.ErrDisabled):
			return DietSuggestion{}, ErrAIUnavailable
		default:
			return DietSuggestion{}, fmt.Errorf("%w: %v", ErrAIUpstream, err)
		}
	}

	plan, err := service.GetPlan(choice.PlanID)
	if err != nil {
		if errors.Is(err, ErrDietPlanNotFound) {
			return DietSuggestion{}, ErrDietSuggestionUnavailable
		}
		return DietSuggestion{}, err
	}
	return DietSuggestion{Plan: plan, Reason: choice.Reason}, nil
}
