package api

import (
	"errors"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListDietPlans(c *fiber.Ctx) error {
	plans, err := handler.dietService.ListPlans()
	if err != nil {
		return internalError(c, "list diet plans", err)
	}
	return c.JSON(plans)
}

func (handler *Handler) GetDietPlan(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid diet plan id")
	}

	plan, err := handler.dietService.GetPlan(planID)
	if err != nil {
		if errors.Is(err, services.ErrDietPlanNotFound) {
			return apiError(c, fiber.StatusNotFound, "Diet plan not found")
		}
		return internalError(c, "get diet plan", err)
	}
	return c.JSON(plan)
}

func (handler *Handler) StartDiet(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := dietStartInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	planID, err := parseID(string(input.PlanID))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid planId")
	}

	entry, err := handler.dietService.Start(user.ID, planID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDietPlanNotFound):
			return apiError(c, fiber.StatusNotFound, "Diet plan not found")
		case errors.Is(err, services.ErrDietStartConflict):
			return apiError(c, fiber.StatusConflict, "another plan was activated concurrently")
		default:
			return internalError(c, "start diet", err)
		}
	}
	return c.JSON(fiber.Map{"message": "Diet journey started! 🥗", "diet": entry})
}

// ActiveDiet responds with JSON null when no plan is in progress.
func (handler *Handler) ActiveDiet(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entry, err := handler.dietService.Active(user.ID)
	if err != nil {
		return internalError(c, "active diet", err)
	}
	if entry == nil {
		return c.JSON(nil)
	}
	return c.JSON(entry)
}

func (handler *Handler) DietHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.dietService.History(user.ID)
	if err != nil {
		return internalError(c, "diet history", err)
	}
	return c.JSON(entries)
}

func (handler *Handler) SuggestDiet(c *fiber.Ctx) error {
	input := dietSuggestInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	suggestion, err := handler.dietService.Suggest(c.UserContext(), input.Query)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDietQueryRequired):
			return apiError(c, fiber.StatusBadRequest, "query is required")
		case errors.Is(err, services.ErrAIUnavailable):
			return apiError(c, fiber.StatusServiceUnavailable, services.AIUnavailableMessage)
		case errors.Is(err, services.ErrDietSuggestionUnavailable):
			return apiError(c, fiber.StatusNotFound, "AI couldn't find a matching plan.")
		case errors.Is(err, services.ErrAIUpstream):
			return apiError(c, fiber.StatusBadGateway, "AI suggestion failed")
		default:
			return internalError(c, "suggest diet", err)
		}
	}
	return c.JSON(suggestion)
}
