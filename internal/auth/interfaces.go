package auth

import (
	"context"

	"github.com/redmonkez12/adventure-api/internal/user"
)

// TokenService defines the interface for token creation and validation.
// The production implementation is JWTService (HS256).
type TokenService interface {
	CreateToken(subject, email string) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}

// UserStore is the persistence surface the auth flows need.
// Implemented by user.Repository.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash, passwordSalt string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id string) (*user.User, error)
}
