package handler

import "github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"

type createFavoriteRequest struct {
	MovieID     movieID `json:"movieId"     swaggertype:"string"`
	MovieTitle  string  `json:"movieTitle"`
	MoviePoster string  `json:"moviePoster" validate:"max=2048"`
}

type favoriteResponse struct {
	Success  bool             `json:"success"`
	Favorite *domain.Favorite `json:"favorite"`
}

type favoritesResponse struct {
	Success   bool               `json:"success"`
	Favorites []*domain.Favorite `json:"favorites"`
}
