package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mikens/recetas-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{ID: "u1", Nombre: "Ana", Email: "ana@x.com"}
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "ana@x.com" || claims.Nombre != "Ana" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	// A negative TTL would be normalized to the default, so build an
	// already-expired token directly with the same claim layout.
	now := time.Now().Add(-2 * time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID: "u1",
		Email:  "ana@x.com",
		Nombre: "Ana",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for foreign key, got %v", err)
	}
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Verify(tampered); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestTokenService_MalformedToken(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(raw); err != domain.ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestTokenService_RejectsUnsignedAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{
		UserID: "u1",
		Email:  "ana@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Verify(raw); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}
