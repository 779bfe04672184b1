package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordChangeInvalidInput = errors.New("password change invalid input")
	ErrPasswordChangeMismatch     = errors.New("password change confirmation mismatch")
	ErrPasswordChangeCurrent      = errors.New("password change current password invalid")
	ErrPasswordChangeUnchanged    = errors.New("password change new password must differ")
)

type PasswordChangeInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

func ValidatePasswordChange(passwordHash string, input PasswordChangeInput) error {
	current := strings.TrimSpace(input.CurrentPassword)
	next := strings.TrimSpace(input.NewPassword)
	confirm := strings.TrimSpace(input.ConfirmPassword)

	if current == "" || next == "" {
		return ErrPasswordChangeInvalidInput
	}
	// clients that do not send a confirmation field are not penalized
	if confirm != "" && next != confirm {
		return ErrPasswordChangeMismatch
	}
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(current)) != nil {
		return ErrPasswordChangeCurrent
	}
	if current == next {
		return ErrPasswordChangeUnchanged
	}
	return ValidatePasswordStrength(next)
}

func (service *SettingsService) ChangePassword(user models.User, input PasswordChangeInput) error {
	if err := ValidatePasswordChange(user.PasswordHash, input); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(input.NewPassword)), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return service.users.UpdatePassword(user.ID, string(passwordHash))
}
