package services

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/loglit-app/loglit/internal/logger"
	"github.com/loglit-app/loglit/internal/models"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password does not meet requirements")
)

// UserCreator registers new users.
type UserCreator interface {
	Create(ctx context.Context, username, email, password string) (*models.CreatedUser, error)
}

// UserByEmailGetter looks up a user row for credential checks.
type UserByEmailGetter interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// TokenGenerator issues session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	creator UserCreator
	reader  UserByEmailGetter
	tokens  TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(creator UserCreator, reader UserByEmailGetter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		creator: creator,
		reader:  reader,
		tokens:  tokens,
	}
}

// validatePassword enforces the minimum password policy: at least 8
// characters, one uppercase letter and one digit.
func validatePassword(password string) error {
	var problems []string
	if len(password) < 8 {
		problems = append(problems, "password must be at least 8 characters")
	}
	hasUpper, hasDigit := false, false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasUpper {
		problems = append(problems, "password must include an uppercase letter")
	}
	if !hasDigit {
		problems = append(problems, "password must include a digit")
	}
	if len(problems) > 0 {
		return errors.Join(ErrWeakPassword, errors.New(strings.Join(problems, "; ")))
	}
	return nil
}

// Register creates a new user account. Uniqueness conflicts surface as
// the repository's classified errors.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.CreatedUser, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	created, err := svc.creator.Create(ctx, username, email, password)
	if err != nil {
		logger.Log.Errorw("failed to register user", "username", username, "err", err)
		return nil, err
	}
	return created, nil
}

// Login authenticates a user by email and returns a session token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}
