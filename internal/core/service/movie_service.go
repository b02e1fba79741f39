package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

// MovieService proxies lookups to the movie catalog. Nothing is cached.
type MovieService struct {
	catalog ports.MovieCatalog
	log     zerolog.Logger
}

func NewMovieService(catalog ports.MovieCatalog, log zerolog.Logger) *MovieService {
	return &MovieService{catalog: catalog, log: log}
}

func (s *MovieService) Search(ctx context.Context, query string) (*ports.MovieSearchResult, error) {
	if query == "" {
		return nil, domain.Validation("Search query is required")
	}

	res, err := s.catalog.Search(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("movie search failed")
		return nil, domain.Upstream("Failed to search movies", err)
	}
	return res, nil
}

func (s *MovieService) Details(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, domain.Validation("Movie id is required")
	}

	movie, err := s.catalog.Details(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("movie_id", id).Msg("movie details failed")
		return nil, domain.Upstream("Failed to get movie details", err)
	}
	return movie, nil
}
