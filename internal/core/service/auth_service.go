package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArjunShatkin/movie-sn-backend/internal/api/metrics"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

const passwordCost = 10

// AuthService implements registration, login and session lookups.
type AuthService struct {
	repo ports.UserRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewAuthService(repo ports.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, log: log, now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := domain.NormalizeEmail(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, domain.Validation("Username, email, and password are required")
	}

	role := in.Role
	if role == "" {
		role = domain.RoleCasual
	}
	if !domain.ValidRole(role) {
		return nil, domain.Validation("Role must be one of: reviewer, casual")
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordCost)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Expertise:    []string{},
		JoinedDate:   now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if role == domain.RoleReviewer {
		user.Bio = in.Bio
		if in.Expertise != nil {
			user.Expertise = in.Expertise
		}
	} else {
		user.FavoriteGenre = in.FavoriteGenre
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	// A concurrent registration may still win the race; the repository
	// reports the unique-index rejection as ErrUserExists.
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(created.Role).Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.Validation("Username and password are required")
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, viewer *domain.Identity) (*domain.User, error) {
	if viewer == nil || viewer.UserID == "" {
		return nil, nil
	}

	user, err := s.repo.FindByID(ctx, viewer.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
