package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
	log         zerolog.Logger
}

func NewUserHandler(userService ports.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// Get returns a public profile. The email is only included for its owner or
// when the owner made it public.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.GetProfile(c.Request().Context(), viewer(c), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err, "Failed to get user")
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, User: user})
}

// Update edits the caller's own profile.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "User id"
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")
	v := viewer(c)
	if v == nil || v.UserID != id {
		// Refuse before looking at the body.
		return writeError(c, h.log, domain.ErrNotProfileOwner, "Failed to update user")
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, h.log, err, "Failed to update user")
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), v, id, req.toPatch())
	if err != nil {
		return writeError(c, h.log, err, "Failed to update user")
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, User: user})
}
