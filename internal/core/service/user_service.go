package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mikens/recetas-api/internal/api/metrics"
	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

type UserService struct {
	users      ports.UserRepository
	adminEmail string
	logger     zerolog.Logger
}

func NewUserService(users ports.UserRepository, adminEmail string, logger zerolog.Logger) *UserService {
	return &UserService{users: users, adminEmail: adminEmail, logger: logger}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// UpdateProfile touches nombre/descripcion/foto only; email and password are
// immutable through this path. Owner-or-admin.
func (s *UserService) UpdateProfile(ctx context.Context, caller ports.Caller, id string, update ports.ProfileUpdate) (*domain.User, error) {
	if caller.ID != id && !caller.IsAdmin() {
		metrics.GuardDenialsTotal.WithLabelValues("profile_update").Inc()
		return nil, domain.ErrForbidden
	}

	updated, err := s.users.UpdateProfile(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Msg("profile updated")
	return updated, nil
}

// Delete is admin-only, and the administrator account itself can never be
// deleted, not even by the administrator.
func (s *UserService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if !caller.IsAdmin() {
		metrics.GuardDenialsTotal.WithLabelValues("user_delete").Inc()
		return domain.ErrForbidden
	}

	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if target.Email == s.adminEmail {
		metrics.GuardDenialsTotal.WithLabelValues("user_delete").Inc()
		return domain.ErrAdminProtected
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Str("admin", caller.Email).Msg("user deleted")
	return nil
}
