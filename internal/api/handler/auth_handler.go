package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    SessionManager
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, sessions SessionManager, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, log: log}
}

// Register creates a new user account. It does not log the user in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration form"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, h.log, err, "Failed to register user")
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		Role:          req.Role,
		Bio:           req.Bio,
		Expertise:     req.Expertise,
		FavoriteGenre: req.FavoriteGenre,
	})
	if err != nil {
		return writeError(c, h.log, err, "Failed to register user")
	}

	return c.JSON(http.StatusCreated, userResponse{
		Success: true,
		Message: "User registered successfully",
		User:    user,
	})
}

// Login checks the credentials and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, h.log, err, "Failed to login")
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeError(c, h.log, err, "Failed to login")
	}

	if err := h.sessions.Establish(c, domain.IdentityOf(user)); err != nil {
		return writeError(c, h.log, err, "Failed to login")
	}

	return c.JSON(http.StatusOK, userResponse{
		Success: true,
		Message: "Login successful",
		User:    user,
	})
}

// Logout destroys the session and clears its cookie. Calling it without a
// session is harmless.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Destroy(c); err != nil {
		return writeError(c, h.log, err, "Failed to logout")
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Logout successful"})
}

// Current returns the logged-in user, or null.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/auth/current [get]
func (h *AuthHandler) Current(c echo.Context) error {
	user, err := h.authService.CurrentUser(c.Request().Context(), viewer(c))
	if err != nil {
		return writeError(c, h.log, err, "Failed to get current user")
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, User: user})
}
