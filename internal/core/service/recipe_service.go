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

type RecipeService struct {
	recipes    ports.RecipeRepository
	users      ports.UserRepository
	adminEmail string
	logger     zerolog.Logger
}

func NewRecipeService(recipes ports.RecipeRepository, users ports.UserRepository, adminEmail string, logger zerolog.Logger) *RecipeService {
	return &RecipeService{recipes: recipes, users: users, adminEmail: adminEmail, logger: logger}
}

func (s *RecipeService) Create(ctx context.Context, caller ports.Caller, input ports.CreateRecipeInput) (*domain.Recipe, error) {
	if input.Titulo == "" || input.Descripcion == "" {
		return nil, domain.ErrMissingFields
	}

	recipe := &domain.Recipe{
		ID:          uuid.NewString(),
		Titulo:      input.Titulo,
		Descripcion: input.Descripcion,
		Autor:       caller.Nombre,
		OwnerID:     caller.ID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.recipes.Create(ctx, recipe)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("recipe_id", created.ID).Str("owner_id", caller.ID).Msg("recipe created")
	return created, nil
}

func (s *RecipeService) List(ctx context.Context) ([]*domain.Recipe, error) {
	return s.recipes.List(ctx)
}

func (s *RecipeService) ListCommunity(ctx context.Context) ([]*domain.Recipe, error) {
	return s.recipes.ListCommunity(ctx)
}

// Update applies a partial patch. Only the owner or the administrator may
// change a recipe, including flips of the comunidad flag.
func (s *RecipeService) Update(ctx context.Context, caller ports.Caller, id string, patch ports.RecipePatch) error {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if patch.Empty() {
		return domain.ErrNoChanges
	}
	if recipe.OwnerID != caller.ID && !caller.IsAdmin() {
		metrics.GuardDenialsTotal.WithLabelValues("recipe_update").Inc()
		return domain.ErrForbidden
	}
	return s.recipes.Update(ctx, id, patch)
}

// Delete is admin-only. The caller's admin standing is re-checked against a
// fresh store lookup of the claims' email; a token alone is not enough.
func (s *RecipeService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if !caller.IsAdmin() {
		metrics.GuardDenialsTotal.WithLabelValues("recipe_delete").Inc()
		return domain.ErrForbidden
	}

	current, err := s.users.FindByEmail(ctx, caller.Email)
	if err != nil || current.Email != s.adminEmail {
		metrics.GuardDenialsTotal.WithLabelValues("recipe_delete").Inc()
		return domain.ErrForbidden
	}

	if _, err := s.recipes.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.recipes.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("recipe_id", id).Str("admin", caller.Email).Msg("recipe deleted")
	return nil
}
