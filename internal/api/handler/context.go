package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ArjunShatkin/movie-sn-backend/internal/api/middleware"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

// SessionManager issues and revokes login sessions.
type SessionManager interface {
	Establish(c echo.Context, id domain.Identity) error
	Destroy(c echo.Context) error
}

// viewer returns the session identity resolved by middleware.Sessions, or
// nil for anonymous requests.
func viewer(c echo.Context) *domain.Identity {
	return middleware.IdentityFrom(c)
}
