package ports

import (
	"context"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

// RegisterInput carries the registration form. Bio and Expertise apply to
// reviewers, FavoriteGenre to casual users.
type RegisterInput struct {
	Username      string
	Email         string
	Password      string
	Role          string
	Bio           string
	Expertise     []string
	FavoriteGenre string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
	// CurrentUser returns nil, nil when there is no session or its user is gone.
	CurrentUser(ctx context.Context, viewer *domain.Identity) (*domain.User, error)
}
