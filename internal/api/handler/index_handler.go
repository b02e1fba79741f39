package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// endpoints is the discovery document served at GET /.
var endpoints = map[string]any{
	"auth": map[string]string{
		"register": "POST /api/auth/register",
		"login":    "POST /api/auth/login",
		"logout":   "POST /api/auth/logout",
		"current":  "GET /api/auth/current",
	},
	"movies": map[string]string{
		"search":  "GET /api/movies/search?query=batman",
		"details": "GET /api/movies/:id",
	},
	"reviews": map[string]string{
		"create":     "POST /api/reviews",
		"getByMovie": "GET /api/reviews/movie/:movieId",
		"getByUser":  "GET /api/reviews/user/:userId",
	},
	"favorites": map[string]string{
		"add":              "POST /api/favorites",
		"getUserFavorites": "GET /api/favorites/user/:userId",
		"remove":           "DELETE /api/favorites/:id",
	},
	"users": map[string]string{
		"profile": "GET /api/users/:id",
		"update":  "PUT /api/users/:id",
	},
	"health": "GET /health",
}

type indexResponse struct {
	Message   string         `json:"message"`
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Endpoints map[string]any `json:"endpoints"`
}

type IndexHandler struct {
	now func() time.Time
}

func NewIndexHandler() *IndexHandler {
	return &IndexHandler{now: time.Now}
}

// Index lists the API's endpoints.
//
// @Summary      API index
// @Tags         meta
// @Produce      json
// @Success      200  {object}  indexResponse
// @Router       / [get]
func (h *IndexHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, indexResponse{
		Message:   "Movie Social Network API",
		Status:    "running",
		Timestamp: h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Endpoints: endpoints,
	})
}
