package ports

import (
	"context"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

// CreateReviewInput is the review form. MovieTitle and MoviePoster are cached
// copies of the upstream metadata.
type CreateReviewInput struct {
	MovieID     string
	MovieTitle  string
	MoviePoster string
	Rating      int
	Title       string
	Content     string
	Spoilers    bool
}

type ReviewService interface {
	ListByMovie(ctx context.Context, movieID string) ([]*domain.Review, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Review, error)
	Create(ctx context.Context, viewer *domain.Identity, in CreateReviewInput) (*domain.Review, error)
}
