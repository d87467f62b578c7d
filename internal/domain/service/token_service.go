package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed access token for a given user.
	Issue(userID int64, email string) (string, error)

	// Verify checks the validity of a token string and returns its claims.
	// Every failure mode (malformed, bad signature, expired) surfaces as the
	// same error so callers cannot distinguish them.
	Verify(tokenString string) (*Claims, error)
}
