package ports

import (
	"context"

	"github.com/mikens/recetas-api/internal/core/domain"
)

// RegisterInput is the transient credential pair plus display name. The
// plaintext password lives only for the duration of the request.
type RegisterInput struct {
	Nombre   string
	Email    string
	Password string
}

// LoginResult carries the minted token and the public identity fields.
// The password hash never leaves the service layer.
type LoginResult struct {
	Token string
	User  domain.PublicUser
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
