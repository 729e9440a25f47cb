package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mikens/recetas-api/internal/api/metrics"
	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

type CommentService struct {
	comments ports.CommentRepository
	recipes  ports.RecipeRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, recipes ports.RecipeRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, recipes: recipes, logger: logger}
}

// Create attributes the comment to the caller's verified claims. The payload
// carries no author fields at all.
func (s *CommentService) Create(ctx context.Context, caller ports.Caller, recipeID, body string) (*domain.Comment, error) {
	if recipeID == "" || body == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.recipes.FindByID(ctx, recipeID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		RecipeID:  recipeID,
		AuthorID:  caller.ID,
		Autor:     caller.Nombre,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	return s.comments.Create(ctx, comment)
}

func (s *CommentService) ListByRecipe(ctx context.Context, recipeID string) ([]*domain.Comment, error) {
	return s.comments.ListByRecipe(ctx, recipeID)
}

// Delete allows the authoring identity or the administrator, nobody else.
func (s *CommentService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if comment.AuthorID != caller.ID && !caller.IsAdmin() {
		metrics.GuardDenialsTotal.WithLabelValues("comment_delete").Inc()
		return domain.ErrForbidden
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("comment_id", id).Str("caller_id", caller.ID).Msg("comment deleted")
	return nil
}
