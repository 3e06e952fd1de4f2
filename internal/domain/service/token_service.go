package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by API access tokens.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for validating API access tokens.
type TokenService interface {
	// ValidateToken parses and verifies an access token.
	ValidateToken(tokenString string) (*Claims, error)
}
