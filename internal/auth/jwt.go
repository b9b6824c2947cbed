package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrInvalidPayload = errors.New("token payload is missing required claims")
)

// TokenClaims is the identity a verified token asserts. Only subject and
// email are trusted; any other claim in the token is ignored.
type TokenClaims struct {
	Subject string
	Email   string
}

// JWTService issues and verifies stateless HS256 bearer tokens.
// There is no server-side session or revocation store: a token is valid
// until it expires.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

func NewJWTService(secret []byte, expiry time.Duration) (*JWTService, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("signing secret must not be empty")
	}
	if expiry <= 0 {
		return nil, fmt.Errorf("token expiry must be positive, got %s", expiry)
	}
	return &JWTService{secret: secret, expiry: expiry}, nil
}

// CreateToken signs a token carrying the subject and email, expiring
// after the configured duration
func (s *JWTService) CreateToken(subject, email string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.expiry).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken validates the signature and expiry, then extracts the
// identity claims. Signature, structure, and expiry problems map to
// ErrInvalidToken/ErrExpiredToken; a well-signed token with missing or
// non-string sub/email claims maps to ErrInvalidPayload.
func (s *JWTService) VerifyToken(tokenStr string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, ErrInvalidPayload
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, ErrInvalidPayload
	}

	return &TokenClaims{Subject: subject, Email: email}, nil
}
