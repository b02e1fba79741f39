package ports

import (
	"context"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	// Create inserts r and sets its ID.
	Create(ctx context.Context, r *domain.Review) error
	// FindByID returns the review with its Author populated.
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	// ListByMovie returns every review of movieID with Author populated.
	ListByMovie(ctx context.Context, movieID string) ([]*domain.Review, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Review, error)
}
