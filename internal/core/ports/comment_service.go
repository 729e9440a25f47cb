package ports

import (
	"context"

	"github.com/mikens/recetas-api/internal/core/domain"
)

type CommentService interface {
	// Create attributes the comment to the caller; any valid session may comment.
	Create(ctx context.Context, caller Caller, recipeID, body string) (*domain.Comment, error)
	ListByRecipe(ctx context.Context, recipeID string) ([]*domain.Comment, error)
	// Delete requires caller-is-author or caller-is-admin.
	Delete(ctx context.Context, caller Caller, id string) error
}
