package ai

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrDisabled      = errors.New("ai: analysis not configured")
	ErrRateLimited   = errors.New("ai: rate limited")
	ErrEmptyResponse = errors.New("ai: empty response")
	ErrEmptyInput    = errors.New("ai: nothing to analyze")
	ErrInvalidImage  = errors.New("ai: invalid image")
	ErrNoJSONObject  = errors.New("ai: no json object in response")
)

// MinImageBytes rejects truncated or placeholder uploads before they reach the model.
const MinImageBytes = 100

const (
	OperationReportText   = "report_text"
	OperationReportImage  = "report_image"
	OperationVitals       = "vitals"
	OperationBillText     = "bill_text"
	OperationBillImage    = "bill_image"
	OperationBillOptimize = "bill_optimize"
	OperationDietSuggest  = "diet_suggest"
	OperationChat         = "chat"
)

type InlineImage struct {
	MIMEType string
	Data     []byte
}

type Request struct {
	Prompt string
	Image  *InlineImage
	// JSON asks the backend for schema-constrained JSON output.
	JSON bool
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type Response struct {
	Text  string
	Model string
	Usage Usage
}

// Completer is a single call to a generative model, without retries.
type Completer interface {
	Complete(ctx context.Context, request Request) (Response, error)
	Model() string
}

// Locale localizes the model output and the medicine brands it may suggest.
type Locale struct {
	Language string
	Country  string
}

func (locale Locale) withDefaults() Locale {
	if strings.TrimSpace(locale.Language) == "" {
		locale.Language = "English"
	}
	if strings.TrimSpace(locale.Country) == "" {
		locale.Country = "Pakistan"
	}
	return locale
}
