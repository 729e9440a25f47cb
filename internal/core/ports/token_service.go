package ports

import "github.com/mikens/recetas-api/internal/core/domain"

// TokenClaims are the identity claims embedded in a session token.
// They are trusted only after a successful Verify.
type TokenClaims struct {
	UserID string
	Email  string
	Nombre string
}

// TokenIssuer mints signed session tokens for verified identities.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier checks a raw token's signature and expiry and returns the
// embedded claims unchanged. Any failure is reported as domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(raw string) (*TokenClaims, error)
}
