package ports

import (
	"context"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

// FavoriteRepository defines persistence operations for favorites.
type FavoriteRepository interface {
	// Create inserts f and sets its ID. Returns domain.ErrFavoriteExists when
	// the (user, movie) pair is already present.
	Create(ctx context.Context, f *domain.Favorite) error
	FindByID(ctx context.Context, id string) (*domain.Favorite, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error)
	// Delete removes the favorite if present; a missing document is not an error.
	Delete(ctx context.Context, id string) error
}
