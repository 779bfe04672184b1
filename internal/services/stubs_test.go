package services

import (
	"context"
	"errors"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/ai"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/storage"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users            map[uint]models.User
	nextID           uint
	updatedLanguage  string
	updatedCountry   string
	updatedPassword  string
	updatePrefsCalls int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[uint]models.User{}, nextID: 1}
}

func (stub *stubUserRepo) ExistsByNormalizedEmail(email string) (bool, error) {
	_, err := stub.FindByNormalizedEmail(email)
	return err == nil, nil
}

func (stub *stubUserRepo) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *stubUserRepo) FindByID(userID uint) (models.User, error) {
	user, ok := stub.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (stub *stubUserRepo) Create(user *models.User) error {
	user.ID = stub.nextID
	stub.nextID++
	stub.users[user.ID] = *user
	return nil
}

func (stub *stubUserRepo) UpdatePreferences(_ uint, language string, country string) error {
	stub.updatePrefsCalls++
	stub.updatedLanguage = language
	stub.updatedCountry = country
	return nil
}

func (stub *stubUserRepo) UpdatePassword(_ uint, passwordHash string) error {
	stub.updatedPassword = passwordHash
	return nil
}

type stubTokenIssuer struct{}

func (stubTokenIssuer) Issue(userID uint, email string) (string, error) {
	return "token-" + email, nil
}

type stubUploader struct {
	objects []storage.Object
	err     error
}

func (stub *stubUploader) Upload(_ context.Context, object storage.Object) (storage.Stored, error) {
	if stub.err != nil {
		return storage.Stored{}, stub.err
	}
	stub.objects = append(stub.objects, object)
	return storage.Stored{URL: "/uploads/" + object.Folder + "/file", PublicID: object.Folder + "/file"}, nil
}

type stubReportRepo struct {
	reports []models.Report
}

func (stub *stubReportRepo) Create(report *models.Report) error {
	report.ID = uint(len(stub.reports) + 1)
	stub.reports = append(stub.reports, *report)
	return nil
}

func (stub *stubReportRepo) FindByID(reportID uint) (models.Report, error) {
	for _, report := range stub.reports {
		if report.ID == reportID {
			return report, nil
		}
	}
	return models.Report{}, gorm.ErrRecordNotFound
}

func (stub *stubReportRepo) ListByUser(userID uint) ([]models.Report, error) {
	result := make([]models.Report, 0)
	for _, report := range stub.reports {
		if report.UserID == userID {
			result = append(result, report)
		}
	}
	return result, nil
}

func (stub *stubReportRepo) ListRecentByUser(userID uint, limit int) ([]models.Report, error) {
	reports, _ := stub.ListByUser(userID)
	if len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

type stubVitalsRepo struct {
	entries []models.Vitals
}

func (stub *stubVitalsRepo) Create(entry *models.Vitals) error {
	entry.ID = uint(len(stub.entries) + 1)
	stub.entries = append(stub.entries, *entry)
	return nil
}

func (stub *stubVitalsRepo) FindByID(vitalsID uint) (models.Vitals, error) {
	for _, entry := range stub.entries {
		if entry.ID == vitalsID {
			return entry, nil
		}
	}
	return models.Vitals{}, gorm.ErrRecordNotFound
}

func (stub *stubVitalsRepo) ListByUser(userID uint) ([]models.Vitals, error) {
	result := make([]models.Vitals, 0)
	for _, entry := range stub.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result, nil
}

type stubBillRepo struct {
	bills []models.Bill
}

func (stub *stubBillRepo) Create(bill *models.Bill) error {
	bill.ID = uint(len(stub.bills) + 1)
	stub.bills = append(stub.bills, *bill)
	return nil
}

func (stub *stubBillRepo) FindByID(billID uint) (models.Bill, error) {
	for _, bill := range stub.bills {
		if bill.ID == billID {
			return bill, nil
		}
	}
	return models.Bill{}, gorm.ErrRecordNotFound
}

func (stub *stubBillRepo) ListByUser(uint) ([]models.Bill, error) {
	return stub.bills, nil
}

type stubCustomBillRepo struct {
	bills []models.CustomBill
}

func (stub *stubCustomBillRepo) Create(bill *models.CustomBill) error {
	bill.ID = uint(len(stub.bills) + 1)
	stub.bills = append(stub.bills, *bill)
	return nil
}

func (stub *stubCustomBillRepo) ListByUser(uint) ([]models.CustomBill, error) {
	return stub.bills, nil
}

// stubAnalyzer implements every analyzer interface used by the services.
type stubAnalyzer struct {
	disabled bool
	err      error

	health       models.HealthAnalysis
	bill         models.BillAnalysis
	optimization models.BillOptimization
	dietChoice   ai.DietChoice
	chatReply    string

	lastText       string
	lastImage      *ai.InlineImage
	lastLocale     ai.Locale
	lastChat       ai.ChatInput
	lastCandidates []ai.DietCandidate
	calls          int
}

func (stub *stubAnalyzer) Enabled() bool {
	return !stub.disabled
}

func (stub *stubAnalyzer) AnalyzeReportText(_ context.Context, text string, locale ai.Locale) (models.HealthAnalysis, error) {
	stub.calls++
	stub.lastText = text
	stub.lastLocale = locale
	return stub.health, stub.err
}

func (stub *stubAnalyzer) AnalyzeReportImage(_ context.Context, image ai.InlineImage, locale ai.Locale) (models.HealthAnalysis, error) {
	stub.calls++
	stub.lastImage = &image
	stub.lastLocale = locale
	return stub.health, stub.err
}

func (stub *stubAnalyzer) AnalyzeVitals(_ context.Context, _ ai.VitalsInput, locale ai.Locale) (models.HealthAnalysis, error) {
	stub.calls++
	stub.lastLocale = locale
	return stub.health, stub.err
}

func (stub *stubAnalyzer) AnalyzeBillText(_ context.Context, text string, locale ai.Locale) (models.BillAnalysis, error) {
	stub.calls++
	stub.lastText = text
	stub.lastLocale = locale
	return stub.bill, stub.err
}

func (stub *stubAnalyzer) AnalyzeBillImage(_ context.Context, image ai.InlineImage, locale ai.Locale) (models.BillAnalysis, error) {
	stub.calls++
	stub.lastImage = &image
	stub.lastLocale = locale
	return stub.bill, stub.err
}

func (stub *stubAnalyzer) OptimizeBill(_ context.Context, _ ai.BillUsage, locale ai.Locale) (models.BillOptimization, error) {
	stub.calls++
	stub.lastLocale = locale
	return stub.optimization, stub.err
}

func (stub *stubAnalyzer) SuggestDiet(_ context.Context, _ string, plans []ai.DietCandidate) (ai.DietChoice, error) {
	stub.calls++
	stub.lastCandidates = plans
	return stub.dietChoice, stub.err
}

func (stub *stubAnalyzer) Chat(_ context.Context, input ai.ChatInput, locale ai.Locale) (string, error) {
	stub.calls++
	stub.lastChat = input
	stub.lastLocale = locale
	return stub.chatReply, stub.err
}

type stubDietRepo struct {
	plans          []models.DietPlan
	entries        []models.UserDiet
	upsertCalls    int
	progressWrites int
	startErr       error
}

func (stub *stubDietRepo) CountPlans() (int64, error) {
	return int64(len(stub.plans)), nil
}

func (stub *stubDietRepo) ListPlans() ([]models.DietPlan, error) {
	return stub.plans, nil
}

func (stub *stubDietRepo) FindPlan(planID uint) (models.DietPlan, error) {
	for _, plan := range stub.plans {
		if plan.ID == planID {
			return plan, nil
		}
	}
	return models.DietPlan{}, gorm.ErrRecordNotFound
}

func (stub *stubDietRepo) UpsertPlans(plans []models.DietPlan) (int, error) {
	stub.upsertCalls++
	for index := range plans {
		plans[index].ID = uint(len(stub.plans) + 1)
		stub.plans = append(stub.plans, plans[index])
	}
	return len(plans), nil
}

func (stub *stubDietRepo) StartPlan(userID uint, planID uint, startedAt time.Time) (models.UserDiet, error) {
	if stub.startErr != nil {
		return models.UserDiet{}, stub.startErr
	}
	for index := range stub.entries {
		if stub.entries[index].UserID == userID && stub.entries[index].Status == models.DietStatusActive {
			stub.entries[index].Status = models.DietStatusCancelled
		}
	}
	entry := models.UserDiet{
		ID:        uint(len(stub.entries) + 1),
		UserID:    userID,
		PlanID:    planID,
		StartDate: startedAt,
		Status:    models.DietStatusActive,
		Progress:  1,
	}
	stub.entries = append(stub.entries, entry)
	return entry, nil
}

func (stub *stubDietRepo) FindActive(userID uint) (models.UserDiet, bool, error) {
	for _, entry := range stub.entries {
		if entry.UserID == userID && entry.Status == models.DietStatusActive {
			return entry, true, nil
		}
	}
	return models.UserDiet{}, false, nil
}

func (stub *stubDietRepo) ListByUser(userID uint) ([]models.UserDiet, error) {
	entries := make([]models.UserDiet, 0)
	for index := len(stub.entries) - 1; index >= 0; index-- {
		if stub.entries[index].UserID == userID {
			entries = append(entries, stub.entries[index])
		}
	}
	return entries, nil
}

func (stub *stubDietRepo) UpdateProgress(entryID uint, progress int, status string) error {
	stub.progressWrites++
	for index := range stub.entries {
		if stub.entries[index].ID == entryID {
			stub.entries[index].Progress = progress
			stub.entries[index].Status = status
			return nil
		}
	}
	return errors.New("entry not found")
}
