package api

import (
	"errors"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/services"
	"github.com/gofiber/fiber/v2"
)

type settingsInput struct {
	Language *string `json:"language"`
	Country  *string `json:"country"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword"`
	NewPassword     string `json:"newPassword" form:"newPassword"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

func (handler *Handler) Dashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"message": "Welcome to dashboard", "user": user})
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := settingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := handler.settingsService.UpdatePreferences(*user, services.PreferencesInput{
		Language: input.Language,
		Country:  input.Country,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSettingsLanguageInvalid):
			return apiError(c, fiber.StatusBadRequest, "unsupported language")
		case errors.Is(err, services.ErrSettingsCountryInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid country")
		default:
			return internalError(c, "update settings", err)
		}
	}
	return c.JSON(fiber.Map{"message": "Settings updated", "user": updated})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err := handler.settingsService.ChangePassword(*user, services.PasswordChangeInput{
		CurrentPassword: input.CurrentPassword,
		NewPassword:     input.NewPassword,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordChangeInvalidInput):
			return apiError(c, fiber.StatusBadRequest, "current and new password are required")
		case errors.Is(err, services.ErrPasswordChangeMismatch):
			return apiError(c, fiber.StatusBadRequest, "password confirmation does not match")
		case errors.Is(err, services.ErrPasswordChangeCurrent):
			return apiError(c, fiber.StatusUnauthorized, "current password is incorrect")
		case errors.Is(err, services.ErrPasswordChangeUnchanged):
			return apiError(c, fiber.StatusBadRequest, "new password must differ from the current one")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "weak password")
		default:
			return internalError(c, "change password", err)
		}
	}
	return c.JSON(fiber.Map{"message": "Password updated"})
}
