package handler

import (
	"time"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

type createReviewRequest struct {
	MovieID     movieID `json:"movieId"     swaggertype:"string"`
	MovieTitle  string  `json:"movieTitle"`
	MoviePoster string  `json:"moviePoster" validate:"max=2048"`
	Rating      int     `json:"rating"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Spoilers    bool    `json:"spoilers"`
}

// reviewBody is a review on the wire. UserID is the author object when the
// author was joined, otherwise the plain user id.
type reviewBody struct {
	ID          string    `json:"_id"`
	UserID      any       `json:"userId" swaggertype:"object"`
	MovieID     string    `json:"movieId"`
	MovieTitle  string    `json:"movieTitle"`
	MoviePoster string    `json:"moviePoster,omitempty"`
	Rating      int       `json:"rating"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Spoilers    bool      `json:"spoilers"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type reviewResponse struct {
	Success bool       `json:"success"`
	Review  reviewBody `json:"review"`
}

type reviewsResponse struct {
	Success bool         `json:"success"`
	Reviews []reviewBody `json:"reviews"`
}

func toReviewBody(r *domain.Review) reviewBody {
	var user any = r.UserID
	if r.Author != nil {
		user = r.Author
	}
	return reviewBody{
		ID:          r.ID,
		UserID:      user,
		MovieID:     r.MovieID,
		MovieTitle:  r.MovieTitle,
		MoviePoster: r.MoviePoster,
		Rating:      r.Rating,
		Title:       r.Title,
		Content:     r.Content,
		Spoilers:    r.Spoilers,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toReviewBodies(reviews []*domain.Review) []reviewBody {
	out := make([]reviewBody, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewBody(r))
	}
	return out
}
