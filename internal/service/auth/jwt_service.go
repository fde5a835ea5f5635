package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Claims holds the validated claims extracted from a token.
type Claims struct {
	StudentID uuid.UUID
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// JWTService defines the interface for issuing and validating access tokens.
// The token is opaque to callers; only this service interprets it.
type JWTService interface {
	// GenerateToken creates a signed access token for the given student.
	GenerateToken(ctx context.Context, studentID uuid.UUID) (string, error)

	// ValidateToken validates an access token and returns its claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on
	// failure.
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}
