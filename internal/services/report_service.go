package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/ai"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/documents"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrReportForbidden = errors.New("report forbidden")
)

const (
	defaultReportType = "General"
	maxReportTypeLen  = 80
)

type ReportRepository interface {
	Create(report *models.Report) error
	FindByID(reportID uint) (models.Report, error)
	ListByUser(userID uint) ([]models.Report, error)
}

type ReportAnalyzer interface {
	Enabled() bool
	AnalyzeReportText(ctx context.Context, text string, locale ai.Locale) (models.HealthAnalysis, error)
	AnalyzeReportImage(ctx context.Context, image ai.InlineImage, locale ai.Locale) (models.HealthAnalysis, error)
}

type UploadInput struct {
	FileName    string
	ContentType string
	Data        []byte
	ReportType  string
	ReportDate  *time.Time
}

type ReportService struct {
	reports  ReportRepository
	uploader storage.Uploader
	analyzer ReportAnalyzer
}

func NewReportService(reports ReportRepository, uploader storage.Uploader, analyzer ReportAnalyzer) *ReportService {
	return &ReportService{reports: reports, uploader: uploader, analyzer: analyzer}
}

// Upload stores the file, analyzes it and persists the report. AI failures
// degrade the stored analysis; storage and database failures are returned.
func (service *ReportService) Upload(ctx context.Context, user models.User, input UploadInput) (models.Report, error) {
	kind, err := documentKind(input.ContentType, input.Data)
	if err != nil {
		return models.Report{}, err
	}

	stored, err := service.uploader.Upload(ctx, storage.Object{
		Name:        input.FileName,
		ContentType: input.ContentType,
		Folder:      storage.FolderReports,
		Data:        input.Data,
	})
	if err != nil {
		return models.Report{}, fmt.Errorf("store report file: %w", err)
	}

	locale := localeFor(user)
	analysis := healthAnalysisFor(ctx, "report upload", models.AnalysisKindReport, service.analyzer.Enabled(), func(ctx context.Context) (models.HealthAnalysis, error) {
		if kind == documents.MimePDF {
			text, err := documents.ExtractPDFText(input.Data)
			if err != nil {
				return models.HealthAnalysis{}, err
			}
			return service.analyzer.AnalyzeReportText(ctx, text, locale)
		}
		return service.analyzer.AnalyzeReportImage(ctx, ai.InlineImage{MIMEType: input.ContentType, Data: input.Data}, locale)
	})

	report := models.Report{
		UserID:     user.ID,
		FileURL:    stored.URL,
		FileName:   strings.TrimSpace(input.FileName),
		MimeType:   input.ContentType,
		ReportType: normalizeReportType(input.ReportType),
		ReportDate: input.ReportDate,
		AISummary:  analysis.Summary,
		Analysis:   analysis,
		Language:   locale.Language,
	}
	if err := service.reports.Create(&report); err != nil {
		return models.Report{}, fmt.Errorf("create report: %w", err)
	}
	return report, nil
}

func (service *ReportService) List(userID uint) ([]models.Report, error) {
	return service.reports.ListByUser(userID)
}

func (service *ReportService) Get(userID uint, reportID uint) (models.Report, error) {
	report, err := service.reports.FindByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Report{}, ErrReportNotFound
		}
		return models.Report{}, err
	}
	if report.UserID != userID {
		return models.Report{}, ErrReportForbidden
	}
	return report, nil
}

func normalizeReportType(raw string) string {
	reportType := strings.Join(strings.Fields(raw), " ")
	if reportType == "" {
		return defaultReportType
	}
	if runes := []rune(reportType); len(runes) > maxReportTypeLen {
		return string(runes[:maxReportTypeLen])
	}
	return reportType
}
