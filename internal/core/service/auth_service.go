package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mikens/recetas-api/internal/api/metrics"
	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

// AuthService implements the two entry transitions into the system:
// registration and login. Registration never issues a token.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenIssuer
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenIssuer, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	if input.Nombre == "" || input.Email == "" || input.Password == "" {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return domain.ErrMissingFields
	}
	if len(input.Password) < domain.MinPasswordLength {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return domain.ErrPasswordTooShort
	}

	// Duplicate check before hashing; the unique index on email backs this
	// up against races, so a concurrent insert still surfaces ErrUserExists.
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		return domain.ErrUserExists
	} else if err != domain.ErrUserNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Nombre:       input.Nombre,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if err == domain.ErrUserExists {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooMany(ctx, email)
		if err != nil {
			// Throttle backend trouble must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			metrics.LoginsTotal.WithLabelValues("unknown_email").Inc()
			s.recordFailure(ctx, email)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("login")
	return &ports.LoginResult{Token: token, User: user.Public()}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}
