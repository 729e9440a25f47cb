package ports

import (
	"context"

	"github.com/mikens/recetas-api/internal/core/domain"
)

// ProfileUpdate carries the only fields a profile update may touch.
// Email and password are immutable through this path.
type ProfileUpdate struct {
	Nombre      string
	Descripcion string
	Foto        string
}

// UserRepository defines persistence operations for identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
