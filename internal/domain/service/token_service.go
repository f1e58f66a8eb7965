package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims carried by a session token. The subject is
// the account's email; nothing else identifies the account.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are stateless: nothing is stored server-side, validity rests
// entirely on the signature and the expiry claim.
type TokenService interface {
	// Issue creates a signed, time-bounded token for the given subject
	// email. Two calls for the same subject always produce different
	// token strings.
	Issue(subjectEmail string) (string, error)

	// Validate checks the signature and expiry of a token string and
	// returns its claims.
	Validate(tokenString string) (*Claims, error)
}
