package ports

import (
	"context"

	"github.com/mikens/recetas-api/internal/core/domain"
)

type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// UpdateProfile requires the caller to own the profile or be admin.
	UpdateProfile(ctx context.Context, caller Caller, id string, update ProfileUpdate) (*domain.User, error)
	// Delete requires admin; the administrator account itself is never
	// deletable, regardless of caller.
	Delete(ctx context.Context, caller Caller, id string) error
}
