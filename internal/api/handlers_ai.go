package api

import (
	"errors"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/ai"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/services"
	"github.com/gofiber/fiber/v2"
)

const maxUsageWindow = 90 * 24 * time.Hour

func (handler *Handler) Chat(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := chatInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	history := make([]ai.ChatTurn, 0, len(input.History))
	for _, turn := range input.History {
		content := turn.Content
		if content == "" {
			content = turn.Text
		}
		history = append(history, ai.ChatTurn{Role: turn.Role, Content: content})
	}

	reply, err := handler.chatService.Chat(c.UserContext(), *user, input.Message, history)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChatMessageRequired):
			return apiError(c, fiber.StatusBadRequest, "message is required")
		case errors.Is(err, services.ErrAIUnavailable):
			return apiError(c, fiber.StatusServiceUnavailable, services.AIUnavailableMessage)
		case errors.Is(err, services.ErrAIUpstream):
			return apiError(c, fiber.StatusBadGateway, "AI service error")
		default:
			return internalError(c, "chat", err)
		}
	}
	return c.JSON(fiber.Map{"response": reply})
}

// AIUsage reports outcome counts; ?days= narrows or widens the window.
func (handler *Handler) AIUsage(c *fiber.Ctx) error {
	window := services.DefaultAIUsageWindow
	if raw := c.Query("days"); raw != "" {
		days, err := parseID(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid days")
		}
		window = time.Duration(days) * 24 * time.Hour
		if window > maxUsageWindow {
			window = maxUsageWindow
		}
	}

	summary, err := handler.aiUsageService.Summary(window)
	if err != nil {
		return internalError(c, "ai usage", err)
	}
	return c.JSON(summary)
}
