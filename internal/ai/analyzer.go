package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
)

type VitalsInput struct {
	BloodPressure string
	Sugar         float64
	Weight        float64
	Notes         string
}

type BillUsage struct {
	Category       string
	TotalUnits     float64
	CurrentAmount  float64
	PreviousAmount float64
	Notes          string
}

type DietCandidate struct {
	ID          uint
	Name        string
	Category    string
	Description string
}

type DietChoice struct {
	PlanID uint
	Reason string
}

type ReportContext struct {
	ReportType string
	Date       string
	Summary    string
}

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatInput struct {
	Message string
	History []ChatTurn
	Reports []ReportContext
}

// maxChatHistory keeps the newest turns of a client-supplied conversation.
const maxChatHistory = 20

// Analyzer builds prompts, calls the completer under the retry policy,
// decodes structured replies and records telemetry for every call.
// A nil completer means AI is not configured; every operation then
// returns ErrDisabled.
type Analyzer struct {
	completer Completer
	retry     RetryPolicy
	recorder  Recorder
	now       func() time.Time
}

func NewAnalyzer(completer Completer, retry RetryPolicy, recorder Recorder) *Analyzer {
	if recorder == nil {
		recorder = discardRecorder{}
	}
	return &Analyzer{
		completer: completer,
		retry:     retry,
		recorder:  recorder,
		now:       time.Now,
	}
}

func (analyzer *Analyzer) Enabled() bool {
	return analyzer != nil && analyzer.completer != nil
}

func (analyzer *Analyzer) AnalyzeReportText(ctx context.Context, text string, locale Locale) (models.HealthAnalysis, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.HealthAnalysis{}, ErrEmptyInput
	}
	return analyzer.health(ctx, OperationReportText, models.AnalysisKindReport, promptData{
		Locale: locale,
		Text:   truncateRunes(text, maxDocumentRunes),
	}, nil)
}

func (analyzer *Analyzer) AnalyzeReportImage(ctx context.Context, image InlineImage, locale Locale) (models.HealthAnalysis, error) {
	if err := validateImage(image); err != nil {
		return models.HealthAnalysis{}, err
	}
	return analyzer.health(ctx, OperationReportImage, models.AnalysisKindReport, promptData{Locale: locale}, &image)
}

func (analyzer *Analyzer) AnalyzeVitals(ctx context.Context, vitals VitalsInput, locale Locale) (models.HealthAnalysis, error) {
	return analyzer.health(ctx, OperationVitals, models.AnalysisKindVitals, promptData{
		Locale: locale,
		Vitals: vitals,
	}, nil)
}

func (analyzer *Analyzer) AnalyzeBillText(ctx context.Context, text string, locale Locale) (models.BillAnalysis, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.BillAnalysis{}, ErrEmptyInput
	}
	return analyzer.bill(ctx, OperationBillText, promptData{
		Locale: locale,
		Text:   truncateRunes(text, maxDocumentRunes),
	}, nil)
}

func (analyzer *Analyzer) AnalyzeBillImage(ctx context.Context, image InlineImage, locale Locale) (models.BillAnalysis, error) {
	if err := validateImage(image); err != nil {
		return models.BillAnalysis{}, err
	}
	return analyzer.bill(ctx, OperationBillImage, promptData{Locale: locale}, &image)
}

func (analyzer *Analyzer) OptimizeBill(ctx context.Context, usage BillUsage, locale Locale) (models.BillOptimization, error) {
	prompt, err := renderPrompt(OperationBillOptimize, promptData{Locale: locale, Usage: usage})
	if err != nil {
		return models.BillOptimization{}, err
	}

	var optimization models.BillOptimization
	raw, decoded, err := analyzer.completeJSON(ctx, OperationBillOptimize, Request{Prompt: prompt, JSON: true}, &optimization)
	if err != nil {
		return models.BillOptimization{}, err
	}
	if !decoded {
		optimization = models.BillOptimization{AISuggestion: raw, Degraded: true}
	}
	optimization.Normalize()
	return optimization, nil
}

// SuggestDiet returns ErrNoJSONObject when the reply names no plan from the candidates.
func (analyzer *Analyzer) SuggestDiet(ctx context.Context, query string, plans []DietCandidate) (DietChoice, error) {
	query = strings.TrimSpace(query)
	if query == "" || len(plans) == 0 {
		return DietChoice{}, ErrEmptyInput
	}
	prompt, err := renderPrompt(OperationDietSuggest, promptData{Query: query, Plans: plans})
	if err != nil {
		return DietChoice{}, err
	}

	var reply struct {
		SelectedID json.RawMessage `json:"selectedId"`
		Reason     string          `json:"reason"`
	}
	_, decoded, err := analyzer.completeJSON(ctx, OperationDietSuggest, Request{Prompt: prompt, JSON: true}, &reply)
	if err != nil {
		return DietChoice{}, err
	}
	if !decoded {
		return DietChoice{}, ErrNoJSONObject
	}

	planID, ok := parsePlanID(reply.SelectedID)
	if !ok {
		return DietChoice{}, ErrNoJSONObject
	}
	for _, plan := range plans {
		if plan.ID == planID {
			return DietChoice{PlanID: planID, Reason: strings.TrimSpace(reply.Reason)}, nil
		}
	}
	return DietChoice{}, ErrNoJSONObject
}

func (analyzer *Analyzer) Chat(ctx context.Context, input ChatInput, locale Locale) (string, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return "", ErrEmptyInput
	}

	history := input.History
	if len(history) > maxChatHistory {
		history = history[len(history)-maxChatHistory:]
	}
	prompt, err := renderPrompt(OperationChat, promptData{
		Locale:  locale,
		Message: message,
		History: history,
		Reports: input.Reports,
	})
	if err != nil {
		return "", err
	}

	response, err := analyzer.complete(ctx, OperationChat, Request{Prompt: prompt}, models.AICallOutcomeOK)
	if err != nil {
		return "", err
	}
	return response.Text, nil
}

func (analyzer *Analyzer) health(ctx context.Context, operation string, kind models.AnalysisKind, data promptData, image *InlineImage) (models.HealthAnalysis, error) {
	prompt, err := renderPrompt(operation, data)
	if err != nil {
		return models.HealthAnalysis{}, err
	}

	var analysis models.HealthAnalysis
	raw, decoded, err := analyzer.completeJSON(ctx, operation, Request{Prompt: prompt, Image: image, JSON: true}, &analysis)
	if err != nil {
		return models.HealthAnalysis{}, err
	}
	if !decoded {
		analysis = models.HealthAnalysis{Summary: raw, Degraded: true}
	}
	analysis.Normalize(kind)
	return analysis, nil
}

func (analyzer *Analyzer) bill(ctx context.Context, operation string, data promptData, image *InlineImage) (models.BillAnalysis, error) {
	prompt, err := renderPrompt(operation, data)
	if err != nil {
		return models.BillAnalysis{}, err
	}

	var analysis models.BillAnalysis
	raw, decoded, err := analyzer.completeJSON(ctx, operation, Request{Prompt: prompt, Image: image, JSON: true}, &analysis)
	if err != nil {
		return models.BillAnalysis{}, err
	}
	if !decoded {
		analysis = models.BillAnalysis{Summary: raw, Degraded: true}
	}
	analysis.Normalize()
	return analysis, nil
}

// completeJSON reports decoded=false, with the raw reply, when no JSON object
// could be recovered. That case is not an error.
func (analyzer *Analyzer) completeJSON(ctx context.Context, operation string, request Request, target any) (string, bool, error) {
	var decodeErr error
	response, err := analyzer.completeWith(ctx, operation, request, func(response Response) string {
		decodeErr = DecodeJSONObject(response.Text, target)
		if decodeErr != nil {
			log.Printf("ai %s: reply is not a JSON object, keeping raw text (%d chars)", operation, len(response.Text))
			return models.AICallOutcomeFallback
		}
		return models.AICallOutcomeOK
	})
	if err != nil {
		return "", false, err
	}
	return response.Text, decodeErr == nil, nil
}

func (analyzer *Analyzer) complete(ctx context.Context, operation string, request Request, outcome string) (Response, error) {
	return analyzer.completeWith(ctx, operation, request, func(Response) string { return outcome })
}

func (analyzer *Analyzer) completeWith(ctx context.Context, operation string, request Request, classify func(Response) string) (Response, error) {
	if !analyzer.Enabled() {
		return Response{}, ErrDisabled
	}

	started := analyzer.now()
	response, attempts, err := analyzer.retry.Do(ctx, operation, func(ctx context.Context) (Response, error) {
		return analyzer.completer.Complete(ctx, request)
	})

	call := models.AICall{
		Operation:        operation,
		Model:            analyzer.completer.Model(),
		Attempts:         attempts,
		LatencyMS:        analyzer.now().Sub(started).Milliseconds(),
		PromptTokens:     response.Usage.PromptTokens,
		CompletionTokens: response.Usage.CompletionTokens,
	}
	if response.Model != "" {
		call.Model = response.Model
	}
	if err != nil {
		call.Outcome = outcomeForError(err)
		call.Error = err.Error()
		log.Printf("ai %s: call failed after %d attempt(s): %v", operation, attempts, err)
	} else {
		call.Outcome = classify(response)
	}
	analyzer.record(ctx, call)

	if err != nil {
		return Response{}, err
	}
	return response, nil
}

func (analyzer *Analyzer) record(ctx context.Context, call models.AICall) {
	if err := analyzer.recorder.RecordCall(context.WithoutCancel(ctx), call); err != nil {
		log.Printf("ai %s: record call telemetry: %v", call.Operation, err)
	}
}

func validateImage(image InlineImage) error {
	if len(image.Data) < MinImageBytes {
		return fmt.Errorf("%w: %d bytes", ErrInvalidImage, len(image.Data))
	}
	if !strings.HasPrefix(strings.ToLower(image.MIMEType), "image/") {
		return fmt.Errorf("%w: unsupported type %q", ErrInvalidImage, image.MIMEType)
	}
	return nil
}

func parsePlanID(raw json.RawMessage) (uint, bool) {
	text := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if text == "" {
		return 0, false
	}
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
