package ports

import (
	"context"

	"github.com/mikens/recetas-api/internal/core/domain"
)

// CreateRecipeInput carries the recipe fields a client may supply.
// Authorship is attributed from the caller, not from the payload.
type CreateRecipeInput struct {
	Titulo      string
	Descripcion string
}

type RecipeService interface {
	Create(ctx context.Context, caller Caller, input CreateRecipeInput) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
	ListCommunity(ctx context.Context) ([]*domain.Recipe, error)
	// Update applies a partial patch; owner-or-admin only.
	Update(ctx context.Context, caller Caller, id string, patch RecipePatch) error
	// Delete is admin-only; the admin identity is re-verified with a fresh
	// store lookup rather than trusted from token claims alone.
	Delete(ctx context.Context, caller Caller, id string) error
}
