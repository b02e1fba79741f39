package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

// UserService serves public profiles and self-service profile edits.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// GetProfile returns the user with the email hidden unless it is public or
// viewer is the profile owner.
func (s *UserService) GetProfile(ctx context.Context, viewer *domain.Identity, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.VisibleTo(viewer), nil
}

// UpdateProfile applies patch to the viewer's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, viewer *domain.Identity, id string, patch domain.ProfilePatch) (*domain.User, error) {
	if viewer == nil || viewer.UserID != id {
		return nil, domain.ErrNotProfileOwner
	}

	patch.Normalize()
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	if patch.Empty() {
		return s.repo.FindByID(ctx, id)
	}

	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Msg("profile updated")
	return user, nil
}
