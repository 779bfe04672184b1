package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/ai"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/documents"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrBillNotFound      = errors.New("bill not found")
	ErrBillForbidden     = errors.New("bill forbidden")
	ErrBillAmountInvalid = errors.New("bill amount invalid")
)

const (
	billAnalysisCompleted = "Analysis completed."
	DefaultBillSuggestion = "Try reducing non-essential usage."
	maxBillCategoryRunes  = 40
)

var billDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2006",
}

type BillRepository interface {
	Create(bill *models.Bill) error
	FindByID(billID uint) (models.Bill, error)
	ListByUser(userID uint) ([]models.Bill, error)
}

type CustomBillRepository interface {
	Create(bill *models.CustomBill) error
	ListByUser(userID uint) ([]models.CustomBill, error)
}

type BillAnalyzer interface {
	Enabled() bool
	AnalyzeBillText(ctx context.Context, text string, locale ai.Locale) (models.BillAnalysis, error)
	AnalyzeBillImage(ctx context.Context, image ai.InlineImage, locale ai.Locale) (models.BillAnalysis, error)
	OptimizeBill(ctx context.Context, usage ai.BillUsage, locale ai.Locale) (models.BillOptimization, error)
}

type BillUploadInput struct {
	FileName    string
	ContentType string
	Data        []byte
	BillType    string
}

type CustomBillInput struct {
	Category       string
	TotalUnits     float64
	CurrentAmount  float64
	PreviousAmount float64
	Notes          string
}

type BillService struct {
	bills       BillRepository
	customBills CustomBillRepository
	uploader    storage.Uploader
	analyzer    BillAnalyzer
	now         func() time.Time
}

func NewBillService(bills BillRepository, customBills CustomBillRepository, uploader storage.Uploader, analyzer BillAnalyzer) *BillService {
	return &BillService{
		bills:       bills,
		customBills: customBills,
		uploader:    uploader,
		analyzer:    analyzer,
		now:         time.Now,
	}
}

func (service *BillService) Upload(ctx context.Context, user models.User, input BillUploadInput) (models.Bill, error) {
	kind, err := documentKind(input.ContentType, input.Data)
	if err != nil {
		return models.Bill{}, err
	}

	stored, err := service.uploader.Upload(ctx, storage.Object{
		Name:        input.FileName,
		ContentType: input.ContentType,
		Folder:      storage.FolderBills,
		Data:        input.Data,
	})
	if err != nil {
		return models.Bill{}, fmt.Errorf("store bill file: %w", err)
	}

	bill := models.Bill{
		UserID:   user.ID,
		FileURL:  stored.URL,
		BillType: firstNonEmpty(strings.TrimSpace(input.BillType), models.DefaultBillType),
	}

	if !service.analyzer.Enabled() {
		bill.AISummary = AIUnavailableMessage
	} else {
		analysis, err := service.analyzeBill(ctx, kind, input, localeFor(user))
		if err != nil {
			log.Printf("bill upload: analysis degraded: %v", err)
			bill.AISummary = AIProcessingErrorMessage
			bill.AIError = err.Error()
		} else {
			applyBillAnalysis(&bill, analysis)
		}
	}
	if bill.BillDate == nil {
		today := service.now()
		bill.BillDate = &today
	}

	if err := service.bills.Create(&bill); err != nil {
		return models.Bill{}, fmt.Errorf("create bill: %w", err)
	}
	return bill, nil
}

func (service *BillService) analyzeBill(ctx context.Context, kind string, input BillUploadInput, locale ai.Locale) (models.BillAnalysis, error) {
	if kind == documents.MimePDF {
		text, err := documents.ExtractPDFText(input.Data)
		if err != nil {
			return models.BillAnalysis{}, err
		}
		return service.analyzer.AnalyzeBillText(ctx, text, locale)
	}
	return service.analyzer.AnalyzeBillImage(ctx, ai.InlineImage{MIMEType: input.ContentType, Data: input.Data}, locale)
}

// applyBillAnalysis lets extracted values win over the user's bill type.
func applyBillAnalysis(bill *models.Bill, analysis models.BillAnalysis) {
	bill.BillType = firstNonEmpty(analysis.BillType, bill.BillType)
	bill.BillDate = parseBillDate(analysis.BillDate)
	bill.TotalAmount = analysis.TotalAmount
	bill.Taxes = analysis.Taxes
	bill.AISummary = firstNonEmpty(analysis.Summary, billAnalysisCompleted)
	bill.Analysis = analysis.Analysis
	bill.Suggestions = analysis.Suggestions
	bill.GraphData = analysis.GraphData
}

func (service *BillService) List(userID uint) ([]models.Bill, error) {
	return service.bills.ListByUser(userID)
}

func (service *BillService) Get(userID uint, billID uint) (models.Bill, error) {
	bill, err := service.bills.FindByID(billID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bill{}, ErrBillNotFound
		}
		return models.Bill{}, err
	}
	if bill.UserID != userID {
		return models.Bill{}, ErrBillForbidden
	}
	return bill, nil
}

func (service *BillService) AddCustomBill(ctx context.Context, user models.User, input CustomBillInput) (models.CustomBill, error) {
	for _, value := range []float64{input.TotalUnits, input.CurrentAmount, input.PreviousAmount} {
		if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return models.CustomBill{}, ErrBillAmountInvalid
		}
	}

	category := strings.Join(strings.Fields(input.Category), " ")
	if category == "" {
		category = models.DefaultBillCategory
	}
	if runes := []rune(category); len(runes) > maxBillCategoryRunes {
		category = string(runes[:maxBillCategoryRunes])
	}
	notes := strings.TrimSpace(input.Notes)
	if runes := []rune(notes); len(runes) > maxNotesRunes {
		notes = string(runes[:maxNotesRunes])
	}

	bill := models.CustomBill{
		UserID:         user.ID,
		BillCategory:   category,
		TotalUnits:     input.TotalUnits,
		CurrentAmount:  input.CurrentAmount,
		PreviousAmount: input.PreviousAmount,
		Notes:          notes,
		AISuggestion:   DefaultBillSuggestion,
	}

	if service.analyzer.Enabled() {
		optimization, err := service.analyzer.OptimizeBill(ctx, ai.BillUsage{
			Category:       category,
			TotalUnits:     input.TotalUnits,
			CurrentAmount:  input.CurrentAmount,
			PreviousAmount: input.PreviousAmount,
			Notes:          notes,
		}, localeFor(user))
		if err != nil {
			log.Printf("custom bill: optimization skipped: %v", err)
		} else {
			bill.AISuggestion = firstNonEmpty(optimization.AISuggestion, DefaultBillSuggestion)
			bill.SavingsEstimate = optimization.SavingsEstimate
			bill.Taxes = optimization.Taxes
			bill.GraphData = optimization.GraphData
		}
	}

	if err := service.customBills.Create(&bill); err != nil {
		return models.CustomBill{}, fmt.Errorf("create custom bill: %w", err)
	}
	return bill, nil
}

func (service *BillService) ListCustomBills(userID uint) ([]models.CustomBill, error) {
	return service.customBills.ListByUser(userID)
}

func parseBillDate(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	for _, layout := range billDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
