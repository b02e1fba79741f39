package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

type ReviewHandler struct {
	reviewService ports.ReviewService
	log           zerolog.Logger
}

func NewReviewHandler(reviewService ports.ReviewService, log zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, log: log}
}

// ListByMovie returns a movie's reviews with their authors, newest first.
//
// @Summary      Reviews of a movie
// @Tags         reviews
// @Produce      json
// @Param        movieId  path      string  true  "Movie id"
// @Success      200      {object}  reviewsResponse
// @Failure      500      {object}  errorResponse
// @Router       /api/reviews/movie/{movieId} [get]
func (h *ReviewHandler) ListByMovie(c echo.Context) error {
	reviews, err := h.reviewService.ListByMovie(c.Request().Context(), c.Param("movieId"))
	if err != nil {
		return writeError(c, h.log, err, "Failed to get reviews")
	}
	return c.JSON(http.StatusOK, reviewsResponse{Success: true, Reviews: toReviewBodies(reviews)})
}

// ListByUser returns a user's reviews, newest first.
//
// @Summary      Reviews by a user
// @Tags         reviews
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  reviewsResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/reviews/user/{userId} [get]
func (h *ReviewHandler) ListByUser(c echo.Context) error {
	reviews, err := h.reviewService.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeError(c, h.log, err, "Failed to get user reviews")
	}
	return c.JSON(http.StatusOK, reviewsResponse{Success: true, Reviews: toReviewBodies(reviews)})
}

// Create posts a review as the logged-in user.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      createReviewRequest  true  "Review"
// @Success      201   {object}  reviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	v := viewer(c)
	if v == nil {
		return writeError(c, h.log, domain.Unauthenticated("Must be logged in to create a review"), "Failed to create review")
	}

	var req createReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, h.log, err, "Failed to create review")
	}

	review, err := h.reviewService.Create(c.Request().Context(), v, ports.CreateReviewInput{
		MovieID:     string(req.MovieID),
		MovieTitle:  req.MovieTitle,
		MoviePoster: req.MoviePoster,
		Rating:      req.Rating,
		Title:       req.Title,
		Content:     req.Content,
		Spoilers:    req.Spoilers,
	})
	if err != nil {
		return writeError(c, h.log, err, "Failed to create review")
	}

	return c.JSON(http.StatusCreated, reviewResponse{Success: true, Review: toReviewBody(review)})
}
