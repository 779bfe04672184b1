package models

import "testing"

func TestNormalizeSeverity(t *testing.T) {
	tests := map[string]Severity{
		" mild ":   SeverityLow,
		"Moderate": SeverityMedium,
		"CRITICAL": SeverityHigh,
		"unknown":  "",
		"":         "",
	}
	for raw, want := range tests {
		if got := NormalizeSeverity(raw); got != want {
			t.Fatalf("NormalizeSeverity(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestHealthAnalysisNormalize(t *testing.T) {
	analysis := HealthAnalysis{
		Summary:  "  Mostly fine  ",
		Severity: "moderate",
		Findings: []Finding{
			{Test: " Hemoglobin ", Value: "10.2 g/dL", Status: "low"},
			{Test: "  ", Value: "dropped"},
			{Test: "Glucose", Value: "n/a", Status: "elevated"},
		},
		Risks:     []string{" anemia ", "", "  "},
		Medicines: []MedicineSuggestion{{Name: ""}, {Name: " Iron "}},
	}

	analysis.Normalize(AnalysisKindReport)

	if analysis.Kind != AnalysisKindReport || analysis.Summary != "Mostly fine" || analysis.Severity != SeverityMedium {
		t.Fatalf("unexpected header fields: %+v", analysis)
	}
	if len(analysis.Findings) != 2 {
		t.Fatalf("expected blank finding to be dropped, got %+v", analysis.Findings)
	}
	first := analysis.Findings[0]
	if first.Test != "Hemoglobin" || first.Status != FindingLow || first.NumericValue == nil || *first.NumericValue != 10.2 {
		t.Fatalf("unexpected first finding: %+v", first)
	}
	second := analysis.Findings[1]
	if second.Status != FindingHigh || second.NumericValue != nil {
		t.Fatalf("unexpected second finding: %+v", second)
	}
	if len(analysis.Risks) != 1 || analysis.Risks[0] != "anemia" {
		t.Fatalf("unexpected risks: %q", analysis.Risks)
	}
	if len(analysis.Medicines) != 1 || analysis.Medicines[0].Name != "Iron" {
		t.Fatalf("unexpected medicines: %+v", analysis.Medicines)
	}
}

func TestBillNormalizeClampsAndCompacts(t *testing.T) {
	bill := BillAnalysis{
		TotalAmount: -40,
		Taxes:       []TaxLine{{Name: " GST ", Amount: 12}, {Name: "", Amount: 3}},
		Suggestions: []string{"", " switch off geyser "},
		GraphData:   &ChartData{},
	}
	bill.Normalize()
	if bill.Kind != AnalysisKindBill || bill.TotalAmount != 0 || bill.GraphData != nil {
		t.Fatalf("unexpected bill analysis: %+v", bill)
	}
	if len(bill.Taxes) != 1 || bill.Taxes[0].Name != "GST" {
		t.Fatalf("unexpected taxes: %+v", bill.Taxes)
	}
	if len(bill.Suggestions) != 1 || bill.Suggestions[0] != "switch off geyser" {
		t.Fatalf("unexpected suggestions: %q", bill.Suggestions)
	}

	optimization := BillOptimization{
		AISuggestion:    " shift usage off-peak ",
		SavingsEstimate: -5,
		GraphData:       &ChartData{Labels: []string{"Current"}},
	}
	optimization.Normalize()
	if optimization.Kind != AnalysisKindCustomBill || optimization.AISuggestion != "shift usage off-peak" || optimization.SavingsEstimate != 0 {
		t.Fatalf("unexpected optimization: %+v", optimization)
	}
	if optimization.GraphData == nil {
		t.Fatal("expected labelled graph data to be kept")
	}
}
