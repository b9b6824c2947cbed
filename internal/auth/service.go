package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/redmonkez12/adventure-api/internal/logging"
	"github.com/redmonkez12/adventure-api/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must contain a lowercase letter, an uppercase letter, a digit and a symbol")
)

// AuthResult is what a successful register or login produces
type AuthResult struct {
	Token string
	User  *user.User
}

// Service handles authentication business logic
type Service struct {
	store             UserStore
	tokenService      TokenService
	logger            *logging.Logger
	minPasswordLength int
}

func NewService(store UserStore, tokenService TokenService, logger *logging.Logger, minPasswordLength int) *Service {
	return &Service{
		store:             store,
		tokenService:      tokenService,
		logger:            logger,
		minPasswordLength: minPasswordLength,
	}
}

// Register creates a new user account and issues a token for it.
//
// The store lookup before Create is an optimization for a friendlier
// conflict path; the unique email index is what actually guarantees
// uniqueness under concurrent registration.
func (s *Service) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	email = normalizeEmail(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmailFormat
	}
	if !isStrongPassword(password, s.minPasswordLength) {
		if len(password) < s.minPasswordLength {
			return nil, fmt.Errorf("%w: password must be at least %d characters", ErrWeakPassword, s.minPasswordLength)
		}
		return nil, ErrWeakPassword
	}

	if _, err := s.store.GetByEmail(ctx, email); err == nil {
		return nil, user.ErrDuplicateEmail
	} else if !errors.Is(err, user.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	salt, hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.store.Create(ctx, email, hash, salt)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			// Lost a race with a concurrent registration; the index wins
			s.logger.Warn("duplicate insert rejected by unique index", "email", email)
			return nil, user.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokenService.CreateToken(newUser.ID, newUser.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &AuthResult{Token: token, User: newUser}, nil
}

// Login authenticates a user and issues a token.
//
// A missing account and a wrong password return the same
// ErrInvalidCredentials so callers cannot enumerate registered emails.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	email = normalizeEmail(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmailFormat
	}

	existing, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !verifyPassword(password, existing.PasswordSalt, existing.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(existing.ID, existing.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &AuthResult{Token: token, User: existing}, nil
}

// GetUser looks up the account behind a verified token subject
func (s *Service) GetUser(ctx context.Context, id string) (*user.User, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return existing, nil
}
