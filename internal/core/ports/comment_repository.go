package ports

import (
	"context"

	"github.com/mikens/recetas-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByRecipe(ctx context.Context, recipeID string) ([]*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
