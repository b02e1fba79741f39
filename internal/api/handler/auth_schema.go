package handler

import "github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"

type registerRequest struct {
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Role          string   `json:"role"          validate:"omitempty,oneof=reviewer casual"`
	Bio           string   `json:"bio"`
	Expertise     []string `json:"expertise"`
	FavoriteGenre string   `json:"favoriteGenre"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userResponse wraps a user. User is null for anonymous /current calls.
type userResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user"`
}
