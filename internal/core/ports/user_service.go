package ports

import (
	"context"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

type UserService interface {
	GetProfile(ctx context.Context, viewer *domain.Identity, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, viewer *domain.Identity, id string, patch domain.ProfilePatch) (*domain.User, error)
}
