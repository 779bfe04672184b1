package api

import (
	"errors"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AddVitals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := vitalsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.vitalsService.Add(c.UserContext(), *user, services.VitalsInput{
		BloodPressure: input.BloodPressure,
		Sugar:         float64(input.Sugar),
		Weight:        float64(input.Weight),
		Notes:         input.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVitalsEmpty):
			return apiError(c, fiber.StatusBadRequest, "at least one vital is required")
		case errors.Is(err, services.ErrVitalsBloodPressure):
			return apiError(c, fiber.StatusBadRequest, "blood pressure must look like 120/80")
		case errors.Is(err, services.ErrVitalsValueInvalid):
			return apiError(c, fiber.StatusBadRequest, "sugar and weight must be non-negative numbers")
		default:
			return internalError(c, "add vitals", err)
		}
	}
	return c.JSON(fiber.Map{
		"message": "Vitals saved and AI result generated ✅",
		"vitals":  entry,
	})
}

func (handler *Handler) ListVitals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.vitalsService.List(user.ID)
	if err != nil {
		return internalError(c, "list vitals", err)
	}
	return c.JSON(entries)
}

func (handler *Handler) GetVitals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	vitalsID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid vitals id")
	}

	entry, err := handler.vitalsService.Get(user.ID, vitalsID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVitalsNotFound):
			return apiError(c, fiber.StatusNotFound, "Vitals not found")
		case errors.Is(err, services.ErrVitalsForbidden):
			return apiError(c, fiber.StatusForbidden, "Forbidden")
		default:
			return internalError(c, "get vitals", err)
		}
	}
	return c.JSON(entry)
}
