package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

type FavoriteHandler struct {
	favoriteService ports.FavoriteService
	log             zerolog.Logger
}

func NewFavoriteHandler(favoriteService ports.FavoriteService, log zerolog.Logger) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService, log: log}
}

// ListByUser returns a user's favorites, most recently added first.
//
// @Summary      Favorites of a user
// @Tags         favorites
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  favoritesResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/favorites/user/{userId} [get]
func (h *FavoriteHandler) ListByUser(c echo.Context) error {
	favs, err := h.favoriteService.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeError(c, h.log, err, "Failed to get favorites")
	}
	if favs == nil {
		favs = []*domain.Favorite{}
	}
	return c.JSON(http.StatusOK, favoritesResponse{Success: true, Favorites: favs})
}

// Create adds a movie to the logged-in user's favorites.
//
// @Summary      Add a favorite
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        body  body      createFavoriteRequest  true  "Favorite"
// @Success      201   {object}  favoriteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/favorites [post]
func (h *FavoriteHandler) Create(c echo.Context) error {
	v := viewer(c)
	if v == nil {
		return writeError(c, h.log, domain.Unauthenticated("Must be logged in to add favorites"), "Failed to add favorite")
	}

	var req createFavoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, h.log, err, "Failed to add favorite")
	}

	fav, err := h.favoriteService.Create(c.Request().Context(), v, ports.CreateFavoriteInput{
		MovieID:     string(req.MovieID),
		MovieTitle:  req.MovieTitle,
		MoviePoster: req.MoviePoster,
	})
	if err != nil {
		return writeError(c, h.log, err, "Failed to add favorite")
	}

	return c.JSON(http.StatusCreated, favoriteResponse{Success: true, Favorite: fav})
}

// Delete removes one of the logged-in user's favorites. Unknown ids succeed.
//
// @Summary      Remove a favorite
// @Tags         favorites
// @Produce      json
// @Param        id   path      string  true  "Favorite id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/favorites/{id} [delete]
func (h *FavoriteHandler) Delete(c echo.Context) error {
	if err := h.favoriteService.Delete(c.Request().Context(), viewer(c), c.Param("id")); err != nil {
		return writeError(c, h.log, err, "Failed to delete favorite")
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Favorite removed"})
}
