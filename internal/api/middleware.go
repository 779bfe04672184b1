package api

import (
	"errors"
	"strings"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/services"
	"github.com/gofiber/fiber/v2"
)

const contextUserKey = "current_user"

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok && user != nil
}

// AuthRequired resolves the bearer token to a stored user.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	rawToken, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	claims, err := handler.tokens.Parse(rawToken)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid token")
	}

	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return apiError(c, fiber.StatusUnauthorized, "invalid token")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
