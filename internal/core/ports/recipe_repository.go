package ports

import (
	"context"

	"github.com/mikens/recetas-api/internal/core/domain"
)

// RecipePatch is a partial update: nil fields are left untouched.
type RecipePatch struct {
	Titulo      *string
	Descripcion *string
	Comunidad   *bool
}

// Empty reports whether the patch would change nothing.
func (p RecipePatch) Empty() bool {
	return p.Titulo == nil && p.Descripcion == nil && p.Comunidad == nil
}

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, r *domain.Recipe) (*domain.Recipe, error)
	FindByID(ctx context.Context, id string) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
	// ListCommunity returns only recipes with comunidad = true.
	ListCommunity(ctx context.Context) ([]*domain.Recipe, error)
	Update(ctx context.Context, id string, patch RecipePatch) error
	Delete(ctx context.Context, id string) error
}
