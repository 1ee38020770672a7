package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mlearn/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// authService owns the accounts map and the single session record.
// Passwords are hashed with bcrypt; bcrypt salts each hash itself.
type authService struct {
	state  StateStore
	logger *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(state StateStore, logger *zap.Logger) *authService {
	return &authService{
		state:  state,
		logger: logger,
	}
}

// Signup creates a new account and establishes the session.
//
// Returns models.ErrAccountExists when the email is already registered.
func (s *authService) Signup(ctx context.Context, email, password string) (*models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}

	accounts := s.accounts(ctx)
	if _, exists := accounts[email]; exists {
		return nil, models.ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	accounts[email] = models.Account{PasswordHash: string(hash)}
	saveState(ctx, s.state, s.logger, accountsStateKey, accounts)

	user := &models.User{Email: email}
	saveState(ctx, s.state, s.logger, sessionStateKey, user)
	return user, nil
}

// Login verifies credentials and establishes the session.
//
// Returns models.ErrInvalidCredentials on unknown email or password mismatch.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, models.ErrInvalidCredentials
	}

	account, exists := s.accounts(ctx)[email]
	if !exists {
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	user := &models.User{Email: email}
	saveState(ctx, s.state, s.logger, sessionStateKey, user)
	return user, nil
}

// Logout clears the session record, leaving accounts intact
func (s *authService) Logout(ctx context.Context) {
	removeState(ctx, s.state, s.logger, sessionStateKey)
}

// Current returns the session user, or nil when nobody is logged in
func (s *authService) Current(ctx context.Context) *models.User {
	var user models.User
	if !loadState(ctx, s.state, s.logger, sessionStateKey, &user) {
		return nil
	}
	return &user
}

// accounts loads the persisted accounts map, defaulting to empty
func (s *authService) accounts(ctx context.Context) map[string]models.Account {
	accounts := map[string]models.Account{}
	loadState(ctx, s.state, s.logger, accountsStateKey, &accounts)
	return accounts
}

// normalizeEmail trims, lowercases, and validates an email address
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("email cannot be empty")
	}
	if !emailRegex.MatchString(email) {
		return "", fmt.Errorf("invalid email format")
	}
	return email, nil
}
