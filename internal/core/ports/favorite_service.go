package ports

import (
	"context"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

type CreateFavoriteInput struct {
	MovieID     string
	MovieTitle  string
	MoviePoster string
}

type FavoriteService interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error)
	Create(ctx context.Context, viewer *domain.Identity, in CreateFavoriteInput) (*domain.Favorite, error)
	Delete(ctx context.Context, viewer *domain.Identity, id string) error
}
