package services

import (
	"errors"
	"fmt"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type TokenIssuer interface {
	Issue(userID uint, email string) (string, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	// Language is an already normalized preference; empty uses the default.
	Language string
}

type AuthResult struct {
	Token string
	User  models.User
}

type AuthService struct {
	users           AuthUserRepository
	tokens          TokenIssuer
	defaultLanguage string
	defaultCountry  string
}

func NewAuthService(users AuthUserRepository, tokens TokenIssuer, defaultLanguage string, defaultCountry string) *AuthService {
	if defaultLanguage == "" {
		defaultLanguage = models.DefaultLanguage
	}
	if defaultCountry == "" {
		defaultCountry = models.DefaultCountry
	}
	return &AuthService{
		users:           users,
		tokens:          tokens,
		defaultLanguage: defaultLanguage,
		defaultCountry:  defaultCountry,
	}
}

func (service *AuthService) Register(input RegisterInput) (AuthResult, error) {
	name, err := NormalizeDisplayName(input.Name)
	if err != nil {
		return AuthResult{}, err
	}
	email, password, err := NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return AuthResult{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return AuthResult{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return AuthResult{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		Language:     firstNonEmpty(input.Language, service.defaultLanguage),
		Country:      service.defaultCountry,
	}
	if err := service.users.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return AuthResult{}, ErrEmailTaken
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}
	return service.issue(user)
}

// Login does not tell apart unknown emails and wrong passwords.
func (service *AuthService) Login(emailRaw string, passwordRaw string) (AuthResult, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return AuthResult{}, ErrAuthCredentialsInvalid
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResult{}, ErrAuthCredentialsInvalid
		}
		return AuthResult{}, fmt.Errorf("load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrAuthCredentialsInvalid
	}
	return service.issue(user)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) issue(user models.User) (AuthResult, error) {
	token, err := service.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{Token: token, User: user}, nil
}
