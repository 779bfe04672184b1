package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const DefaultModel = "gemini-2.5-flash"

// GeminiCompleter calls the Gemini generateContent API.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

func NewGeminiCompleter(ctx context.Context, apiKey string, model string) (*GeminiCompleter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrDisabled
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiCompleter{client: client, model: model}, nil
}

func (completer *GeminiCompleter) Model() string {
	return completer.model
}

func (completer *GeminiCompleter) Close() error {
	return completer.client.Close()
}

func (completer *GeminiCompleter) Complete(ctx context.Context, request Request) (Response, error) {
	model := completer.client.GenerativeModel(completer.model)
	if request.JSON {
		model.ResponseMIMEType = "application/json"
	}

	parts := make([]genai.Part, 0, 2)
	if request.Image != nil {
		parts = append(parts, genai.Blob{MIMEType: request.Image.MIMEType, Data: request.Image.Data})
	}
	parts = append(parts, genai.Text(request.Prompt))

	response, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return Response{}, classifyError(err)
	}

	text := responseText(response)
	if text == "" {
		return Response{}, ErrEmptyResponse
	}

	result := Response{Text: text, Model: completer.model}
	if usage := response.UsageMetadata; usage != nil {
		result.Usage = Usage{
			PromptTokens:     int(usage.PromptTokenCount),
			CompletionTokens: int(usage.CandidatesTokenCount),
			TotalTokens:      int(usage.TotalTokenCount),
		}
	}
	return result, nil
}

func responseText(response *genai.GenerateContentResponse) string {
	if response == nil {
		return ""
	}
	var builder strings.Builder
	for _, candidate := range response.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				builder.WriteString(string(text))
			}
		}
		if builder.Len() > 0 {
			break
		}
	}
	return strings.TrimSpace(builder.String())
}

// classifyError maps the transport-specific rate-limit signals to ErrRateLimited.
func classifyError(err error) error {
	if isRateLimited(err) {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return fmt.Errorf("gemini generate content: %w", err)
}

func isRateLimited(err error) bool {
	var googleErr *googleapi.Error
	if errors.As(err, &googleErr) && googleErr.Code == http.StatusTooManyRequests {
		return true
	}
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPCode() == http.StatusTooManyRequests {
			return true
		}
		if apiErr.GRPCStatus() != nil && apiErr.GRPCStatus().Code() == codes.ResourceExhausted {
			return true
		}
	}
	return status.Code(err) == codes.ResourceExhausted
}
