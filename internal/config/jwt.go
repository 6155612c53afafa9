package config

import (
	"fmt"
	"os"
	"strconv"
)

// defaultExpirationHours is used when JWT_EXPIRATION_HOURS is unset.
// Recruiter sessions are expected to span a working day with margin.
const defaultExpirationHours = 24

// JWTConfig holds the signing secret and lifetime for recruiter tokens.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig builds the token configuration from the environment:
// JWT_SECRET (required) and JWT_EXPIRATION_HOURS (optional, whole hours).
// Tokens carry the recruiter ID and guard every non-public endpoint, so a
// missing secret fails startup rather than falling back to a weak default.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationHours := defaultExpirationHours
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		expirationHours = parsed
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &JWTConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}, nil
}
