package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ArjunShatkin/movie-sn-backend/internal/api/metrics"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

type FavoriteService struct {
	repo ports.FavoriteRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewFavoriteService(repo ports.FavoriteRepository, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{repo: repo, log: log, now: time.Now}
}

// ListByUser returns the user's favorites, most recently added first.
func (s *FavoriteService) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	favs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(favs, func(a, b *domain.Favorite) int {
		return b.AddedDate.Compare(a.AddedDate)
	})
	return favs, nil
}

func (s *FavoriteService) Create(ctx context.Context, viewer *domain.Identity, in ports.CreateFavoriteInput) (*domain.Favorite, error) {
	if viewer == nil {
		return nil, domain.Unauthenticated("Must be logged in to add favorites")
	}

	now := s.now().UTC()
	fav := &domain.Favorite{
		UserID:      viewer.UserID,
		MovieID:     strings.TrimSpace(in.MovieID),
		MovieTitle:  strings.TrimSpace(in.MovieTitle),
		MoviePoster: in.MoviePoster,
		AddedDate:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := fav.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, fav); err != nil {
		if errors.Is(err, domain.ErrFavoriteExists) {
			metrics.FavoritesTotal.WithLabelValues("duplicate").Inc()
		}
		return nil, err
	}

	metrics.FavoritesTotal.WithLabelValues("added").Inc()
	s.log.Info().Str("user_id", viewer.UserID).Str("movie_id", fav.MovieID).Msg("favorite added")
	return fav, nil
}

// Delete removes one of viewer's favorites. Deleting a favorite that does not
// exist succeeds; deleting someone else's is forbidden.
func (s *FavoriteService) Delete(ctx context.Context, viewer *domain.Identity, id string) error {
	if viewer == nil {
		return domain.Unauthenticated("Must be logged in")
	}

	fav, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			return nil
		}
		return err
	}
	if fav.UserID != viewer.UserID {
		s.log.Warn().Str("favorite_id", id).Str("user_id", viewer.UserID).Msg("refused to delete another user's favorite")
		return domain.ErrNotFavoriteOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.FavoritesTotal.WithLabelValues("removed").Inc()
	return nil
}
