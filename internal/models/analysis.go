package models

import (
	"regexp"
	"strconv"
	"strings"
)

// AnalysisKind tags which result shape a stored analysis holds.
type AnalysisKind string

const (
	AnalysisKindReport     AnalysisKind = "report"
	AnalysisKindVitals     AnalysisKind = "vitals"
	AnalysisKindBill       AnalysisKind = "bill"
	AnalysisKindCustomBill AnalysisKind = "custom_bill"
)

type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

const (
	FindingLow    = "Low"
	FindingNormal = "Normal"
	FindingHigh   = "High"
)

type Finding struct {
	Test         string   `json:"test"`
	Value        string   `json:"value"`
	Status       string   `json:"status,omitempty"`
	NumericValue *float64 `json:"numericValue,omitempty"`
}

type MedicineSuggestion struct {
	Name             string `json:"name"`
	Formula          string `json:"formula,omitempty"`
	Purpose          string `json:"purpose,omitempty"`
	AvailabilityLink string `json:"availabilityLink,omitempty"`
}

// HealthAnalysis is the structured result for reports and vitals.
// Degraded marks results that carry raw model text or a failure message
// instead of parsed findings.
type HealthAnalysis struct {
	Kind            AnalysisKind         `json:"kind"`
	Summary         string               `json:"summary"`
	Findings        []Finding            `json:"findings,omitempty"`
	Risks           []string             `json:"risks,omitempty"`
	Severity        Severity             `json:"severity,omitempty"`
	Recommendations []string             `json:"recommendations,omitempty"`
	Medicines       []MedicineSuggestion `json:"medicines,omitempty"`
	Degraded        bool                 `json:"degraded,omitempty"`
	Error           string               `json:"error,omitempty"`
}

type TaxLine struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type ChartDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// BillAnalysis is the structured result extracted from an uploaded bill.
type BillAnalysis struct {
	Kind        AnalysisKind `json:"kind"`
	BillType    string       `json:"billType,omitempty"`
	BillDate    string       `json:"billDate,omitempty"`
	TotalAmount float64      `json:"totalAmount,omitempty"`
	Taxes       []TaxLine    `json:"taxes,omitempty"`
	Summary     string       `json:"summary"`
	Analysis    string       `json:"analysis,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
	GraphData   *ChartData   `json:"graphData,omitempty"`
	Degraded    bool         `json:"degraded,omitempty"`
}

// BillOptimization is the structured result for a manually entered bill.
type BillOptimization struct {
	Kind            AnalysisKind `json:"kind"`
	AISuggestion    string       `json:"aiSuggestion"`
	SavingsEstimate float64      `json:"savingsEstimate"`
	Taxes           []TaxLine    `json:"taxes,omitempty"`
	GraphData       *ChartData   `json:"graphData,omitempty"`
	Degraded        bool         `json:"degraded,omitempty"`
}

var leadingNumberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

func NormalizeSeverity(raw string) Severity {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low", "mild":
		return SeverityLow
	case "medium", "moderate":
		return SeverityMedium
	case "high", "severe", "critical":
		return SeverityHigh
	default:
		return ""
	}
}

func NormalizeFindingStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return FindingLow
	case "normal", "ok", "within range":
		return FindingNormal
	case "high", "elevated":
		return FindingHigh
	default:
		return ""
	}
}

// Normalize validates the analysis in place before it is persisted.
func (analysis *HealthAnalysis) Normalize(kind AnalysisKind) {
	analysis.Kind = kind
	analysis.Summary = strings.TrimSpace(analysis.Summary)
	analysis.Severity = NormalizeSeverity(string(analysis.Severity))

	findings := make([]Finding, 0, len(analysis.Findings))
	for _, finding := range analysis.Findings {
		finding.Test = strings.TrimSpace(finding.Test)
		finding.Value = strings.TrimSpace(finding.Value)
		if finding.Test == "" {
			continue
		}
		finding.Status = NormalizeFindingStatus(finding.Status)
		if finding.NumericValue == nil {
			finding.NumericValue = parseLeadingNumber(finding.Value)
		}
		findings = append(findings, finding)
	}
	analysis.Findings = findings

	analysis.Risks = compactStrings(analysis.Risks)
	analysis.Recommendations = compactStrings(analysis.Recommendations)

	medicines := make([]MedicineSuggestion, 0, len(analysis.Medicines))
	for _, medicine := range analysis.Medicines {
		medicine.Name = strings.TrimSpace(medicine.Name)
		if medicine.Name == "" {
			continue
		}
		medicines = append(medicines, medicine)
	}
	analysis.Medicines = medicines
}

func (analysis *BillAnalysis) Normalize() {
	analysis.Kind = AnalysisKindBill
	analysis.BillType = strings.TrimSpace(analysis.BillType)
	analysis.Summary = strings.TrimSpace(analysis.Summary)
	analysis.Analysis = strings.TrimSpace(analysis.Analysis)
	analysis.Suggestions = compactStrings(analysis.Suggestions)
	analysis.Taxes = compactTaxes(analysis.Taxes)
	if analysis.TotalAmount < 0 {
		analysis.TotalAmount = 0
	}
	if analysis.GraphData != nil && len(analysis.GraphData.Labels) == 0 {
		analysis.GraphData = nil
	}
}

func (optimization *BillOptimization) Normalize() {
	optimization.Kind = AnalysisKindCustomBill
	optimization.AISuggestion = strings.TrimSpace(optimization.AISuggestion)
	optimization.Taxes = compactTaxes(optimization.Taxes)
	if optimization.SavingsEstimate < 0 {
		optimization.SavingsEstimate = 0
	}
	if optimization.GraphData != nil && len(optimization.GraphData.Labels) == 0 {
		optimization.GraphData = nil
	}
}

func compactStrings(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func compactTaxes(values []TaxLine) []TaxLine {
	result := make([]TaxLine, 0, len(values))
	for _, tax := range values {
		tax.Name = strings.TrimSpace(tax.Name)
		if tax.Name == "" {
			continue
		}
		result = append(result, tax)
	}
	return result
}

func parseLeadingNumber(raw string) *float64 {
	match := leadingNumberPattern.FindString(raw)
	if match == "" {
		return nil
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &value
}
