package cli

import (
	"errors"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/db"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/security"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	temporaryPasswordLength   = 12
	temporaryPasswordAttempts = 32
)

type ResetPasswordOptions struct {
	// Prompt reads the new password from Stdin instead of generating one.
	Prompt bool
	Stdin  *os.File
	Stdout io.Writer
}

type passwordResetStore interface {
	FindByNormalizedEmail(email string) (models.User, error)
	UpdatePassword(userID uint, passwordHash string) error
}

func RunResetPasswordCommand(dbPath string, email string, options ResetPasswordOptions) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}
	if options.Stdout == nil {
		options.Stdout = os.Stdout
	}

	var password string
	if options.Prompt {
		entered, err := promptNewPassword(options.Stdin, options.Stdout)
		if err != nil {
			return err
		}
		password = entered
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database)

	password, err = resetPassword(db.NewUserRepository(database), normalizedEmail, password)
	if err != nil {
		return err
	}

	fmt.Fprintln(options.Stdout, "✅ Password reset successful")
	if !options.Prompt {
		fmt.Fprintf(options.Stdout, "Temporary password: %s\n", password)
		fmt.Fprintln(options.Stdout, "Ask the user to change it from settings after signing in.")
	}
	return nil
}

// resetPassword stores a hash of password, generating one when it is empty,
// and returns the plaintext that was applied.
func resetPassword(users passwordResetStore, email string, password string) (string, error) {
	user, err := users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("user %s not found", email)
		}
		return "", fmt.Errorf("load user: %w", err)
	}

	if password == "" {
		password, err = generateTemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return "", fmt.Errorf("generate temporary password: %w", err)
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	if err := users.UpdatePassword(user.ID, string(passwordHash)); err != nil {
		return "", fmt.Errorf("update user password: %w", err)
	}
	return password, nil
}

// generateTemporaryPassword only returns passwords that pass the signup
// strength policy, so the user can keep it if they want to.
func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	for attempt := 0; attempt < temporaryPasswordAttempts; attempt++ {
		candidate, err := security.RandomAlphanumeric(length)
		if err != nil {
			return "", err
		}
		if services.ValidatePasswordStrength(candidate) == nil {
			return candidate, nil
		}
	}
	return "", errors.New("could not generate a strong password")
}

func promptNewPassword(stdin *os.File, stdout io.Writer) (string, error) {
	if stdin == nil {
		stdin = os.Stdin
	}

	fmt.Fprint(stdout, "New password: ")
	first, err := readPasswordNoEcho(stdin)
	fmt.Fprintln(stdout)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Fprint(stdout, "Repeat password: ")
	second, err := readPasswordNoEcho(stdin)
	fmt.Fprintln(stdout)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	if err := services.ValidatePasswordStrength(string(first)); err != nil {
		return "", errors.New("password must be 8-72 bytes with upper, lower and digit characters")
	}
	return string(first), nil
}

func closeDatabase(database *gorm.DB) {
	sqlDB, err := database.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
