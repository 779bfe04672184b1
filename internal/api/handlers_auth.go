package api

import (
	"errors"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/services"
	"github.com/gofiber/fiber/v2"
)

type registerInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Language string `json:"language" form:"language"`
}

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	language := handler.languages.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
	if input.Language != "" {
		normalized, ok := handler.languages.NormalizeLanguage(input.Language)
		if !ok {
			return apiError(c, fiber.StatusBadRequest, "unsupported language")
		}
		language = normalized
	}

	result, err := handler.authService.Register(services.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Language: language,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthNameInvalid):
			return apiError(c, fiber.StatusBadRequest, "name is required")
		case errors.Is(err, services.ErrAuthCredentialsInvalid):
			return apiError(c, fiber.StatusBadRequest, "valid email and password are required")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "weak password")
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, "User already exists")
		default:
			return internalError(c, "register", err)
		}
	}

	return c.JSON(authResponse("User registered", result))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.blocked(limiterKey, handler.now()) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := handler.authService.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			handler.loginLimiter.recordFailure(limiterKey, handler.now())
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return internalError(c, "login", err)
	}

	handler.loginLimiter.reset(limiterKey)
	return c.JSON(authResponse("Login success", result))
}

func authResponse(message string, result services.AuthResult) fiber.Map {
	return fiber.Map{
		"message": message,
		"token":   result.Token,
		"user": fiber.Map{
			"id":    result.User.ID,
			"name":  result.User.Name,
			"email": result.User.Email,
		},
	}
}
