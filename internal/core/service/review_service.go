package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ArjunShatkin/movie-sn-backend/internal/api/metrics"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

type ReviewService struct {
	repo ports.ReviewRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewReviewService(repo ports.ReviewRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, log: log, now: time.Now}
}

// ListByMovie returns the movie's reviews newest first, authors attached.
func (s *ReviewService) ListByMovie(ctx context.Context, movieID string) ([]*domain.Review, error) {
	reviews, err := s.repo.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(reviews)
	return reviews, nil
}

// ListByUser returns the user's reviews newest first.
func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]*domain.Review, error) {
	reviews, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(reviews)
	return reviews, nil
}

// Create stores a review owned by viewer. Repeated reviews of the same movie
// by the same user are allowed.
func (s *ReviewService) Create(ctx context.Context, viewer *domain.Identity, in ports.CreateReviewInput) (*domain.Review, error) {
	if viewer == nil {
		return nil, domain.Unauthenticated("Must be logged in to create a review")
	}

	now := s.now().UTC()
	review := &domain.Review{
		UserID:      viewer.UserID,
		MovieID:     strings.TrimSpace(in.MovieID),
		MovieTitle:  strings.TrimSpace(in.MovieTitle),
		MoviePoster: in.MoviePoster,
		Rating:      in.Rating,
		Title:       strings.TrimSpace(in.Title),
		Content:     strings.TrimSpace(in.Content),
		Spoilers:    in.Spoilers,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	metrics.ReviewsCreatedTotal.Inc()

	populated, err := s.repo.FindByID(ctx, review.ID)
	if err != nil {
		// The write succeeded; fall back to the session identity for the author.
		s.log.Warn().Err(err).Str("review_id", review.ID).Msg("failed to reload review")
		review.Author = &domain.Author{ID: viewer.UserID, Username: viewer.Username, Role: viewer.Role}
		return review, nil
	}

	s.log.Info().Str("review_id", review.ID).Str("movie_id", review.MovieID).Msg("review created")
	return populated, nil
}

func sortNewestFirst(reviews []*domain.Review) {
	slices.SortStableFunc(reviews, func(a, b *domain.Review) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
