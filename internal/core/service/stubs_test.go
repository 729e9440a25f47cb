package service

import (
	"context"

	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Nombre = update.Nombre
	u.Descripcion = update.Descripcion
	u.Foto = update.Foto
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubRecipeRepo struct {
	recipes map[string]*domain.Recipe
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{recipes: make(map[string]*domain.Recipe)}
}

func (r *stubRecipeRepo) Create(_ context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	clone := *recipe
	r.recipes[recipe.ID] = &clone
	return recipe, nil
}

func (r *stubRecipeRepo) FindByID(_ context.Context, id string) (*domain.Recipe, error) {
	if recipe, ok := r.recipes[id]; ok {
		clone := *recipe
		return &clone, nil
	}
	return nil, domain.ErrRecipeNotFound
}

func (r *stubRecipeRepo) List(_ context.Context) ([]*domain.Recipe, error) {
	out := make([]*domain.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		clone := *recipe
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubRecipeRepo) ListCommunity(_ context.Context) ([]*domain.Recipe, error) {
	var out []*domain.Recipe
	for _, recipe := range r.recipes {
		if recipe.Comunidad {
			clone := *recipe
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubRecipeRepo) Update(_ context.Context, id string, patch ports.RecipePatch) error {
	recipe, ok := r.recipes[id]
	if !ok {
		return domain.ErrRecipeNotFound
	}
	if patch.Titulo != nil {
		recipe.Titulo = *patch.Titulo
	}
	if patch.Descripcion != nil {
		recipe.Descripcion = *patch.Descripcion
	}
	if patch.Comunidad != nil {
		recipe.Comunidad = *patch.Comunidad
	}
	return nil
}

func (r *stubRecipeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.recipes[id]; !ok {
		return domain.ErrRecipeNotFound
	}
	delete(r.recipes, id)
	return nil
}

type stubCommentRepo struct {
	comments map[string]*domain.Comment
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	clone := *c
	r.comments[c.ID] = &clone
	return c, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	if c, ok := r.comments[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCommentNotFound
}

func (r *stubCommentRepo) ListByRecipe(_ context.Context, recipeID string) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.RecipeID == recipeID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

// stubThrottle blocks when failures reaches the limit given at construction.
type stubThrottle struct {
	failures map[string]int
	limit    int
}

func newStubThrottle(limit int) *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), limit: limit}
}

func (t *stubThrottle) TooMany(_ context.Context, email string) (bool, error) {
	return t.failures[email] >= t.limit, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, email string) error {
	t.failures[email]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, email string) error {
	delete(t.failures, email)
	return nil
}
