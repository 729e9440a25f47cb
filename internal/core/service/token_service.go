package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

// TokenTTL is fixed at one hour from issuance; expiry is enforced lazily at
// verification time, there is no background sweep.
const TokenTTL = time.Hour

type sessionClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed session tokens. It is
// stateless: the signing secret is the only state, read-only after startup.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token embedding the identity claims, expiring ttl after now.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Nombre: user.Nombre,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a raw token. Signature mismatch, malformed
// payload, wrong algorithm, and elapsed expiry all collapse into
// domain.ErrInvalidToken; callers get no further detail.
func (s *TokenService) Verify(raw string) (*ports.TokenClaims, error) {
	var claims sessionClaims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Nombre: claims.Nombre,
	}, nil
}
