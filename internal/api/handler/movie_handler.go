package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

type MovieHandler struct {
	movieService ports.MovieService
	log          zerolog.Logger
}

func NewMovieHandler(movieService ports.MovieService, log zerolog.Logger) *MovieHandler {
	return &MovieHandler{movieService: movieService, log: log}
}

type searchResponse struct {
	Success bool              `json:"success"`
	Results []json.RawMessage `json:"results" swaggertype:"array,object"`
	Total   int               `json:"total"`
	Query   string            `json:"query"`
}

type movieResponse struct {
	Success bool            `json:"success"`
	Movie   json.RawMessage `json:"movie" swaggertype:"object"`
}

// Search proxies a title search to the movie database.
//
// @Summary      Search movies
// @Tags         movies
// @Produce      json
// @Param        query  query     string  true  "Search text"
// @Success      200    {object}  searchResponse
// @Failure      400    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /api/movies/search [get]
func (h *MovieHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")

	res, err := h.movieService.Search(c.Request().Context(), query)
	if err != nil {
		return writeError(c, h.log, err, "Failed to search movies")
	}

	return c.JSON(http.StatusOK, searchResponse{
		Success: true,
		Results: res.Results,
		Total:   res.Total,
		Query:   query,
	})
}

// Details proxies a single movie lookup.
//
// @Summary      Movie details
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie id"
// @Success      200  {object}  movieResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/movies/{id} [get]
func (h *MovieHandler) Details(c echo.Context) error {
	movie, err := h.movieService.Details(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err, "Failed to get movie details")
	}
	return c.JSON(http.StatusOK, movieResponse{Success: true, Movie: movie})
}
