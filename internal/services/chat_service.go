package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/ai"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
)

var ErrChatMessageRequired = errors.New("chat message required")

// chatContextReports is how many recent reports ground a chat turn.
const chatContextReports = 3

const maxChatMessageRunes = 4000

type ChatReportRepository interface {
	ListRecentByUser(userID uint, limit int) ([]models.Report, error)
}

type ChatAnalyzer interface {
	Enabled() bool
	Chat(ctx context.Context, input ai.ChatInput, locale ai.Locale) (string, error)
}

type ChatService struct {
	reports  ChatReportRepository
	analyzer ChatAnalyzer
}

func NewChatService(reports ChatReportRepository, analyzer ChatAnalyzer) *ChatService {
	return &ChatService{reports: reports, analyzer: analyzer}
}

func (service *ChatService) Chat(ctx context.Context, user models.User, message string, history []ai.ChatTurn) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrChatMessageRequired
	}
	if runes := []rune(message); len(runes) > maxChatMessageRunes {
		message = string(runes[:maxChatMessageRunes])
	}
	if !service.analyzer.Enabled() {
		return "", ErrAIUnavailable
	}

	reports, err := service.reports.ListRecentByUser(user.ID, chatContextReports)
	if err != nil {
		return "", fmt.Errorf("load chat context: %w", err)
	}
	contextReports := make([]ai.ReportContext, 0, len(reports))
	for _, report := range reports {
		date := "unknown"
		if report.ReportDate != nil {
			date = report.ReportDate.Format("2006-01-02")
		}
		contextReports = append(contextReports, ai.ReportContext{
			ReportType: report.ReportType,
			Date:       date,
			Summary:    report.AISummary,
		})
	}

	reply, err := service.analyzer.Chat(ctx, ai.ChatInput{
		Message: message,
		History: sanitizeChatHistory(history),
		Reports: contextReports,
	}, localeFor(user))
	if err != nil {
		if errors.Is(err, ai.ErrDisabled) {
			return "", ErrAIUnavailable
		}
		return "", fmt.Errorf("%w: %v", ErrAIUpstream, err)
	}
	return reply, nil
}

// sanitizeChatHistory keeps user and assistant turns with content.
func sanitizeChatHistory(history []ai.ChatTurn) []ai.ChatTurn {
	result := make([]ai.ChatTurn, 0, len(history))
	for _, turn := range history {
		content := strings.TrimSpace(turn.Content)
		if content == "" {
			continue
		}
		role := strings.ToLower(strings.TrimSpace(turn.Role))
		switch role {
		case "user", "assistant":
		case "model", "ai", "bot":
			role = "assistant"
		default:
			continue
		}
		result = append(result, ai.ChatTurn{Role: role, Content: content})
	}
	return result
}
