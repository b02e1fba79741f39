package handler

import "github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"

// updateProfileRequest lists the editable fields. Anything else in the body,
// including username and password, is ignored.
type updateProfileRequest struct {
	Email          *string   `json:"email"`
	Role           *string   `json:"role"           validate:"omitempty,oneof=reviewer casual"`
	Bio            *string   `json:"bio"`
	Expertise      *[]string `json:"expertise"`
	FavoriteGenre  *string   `json:"favoriteGenre"`
	ProfilePicture *string   `json:"profilePicture"`
	EmailPublic    *bool     `json:"emailPublic"`
}

func (r updateProfileRequest) toPatch() domain.ProfilePatch {
	return domain.ProfilePatch{
		Email:          r.Email,
		Role:           r.Role,
		Bio:            r.Bio,
		Expertise:      r.Expertise,
		FavoriteGenre:  r.FavoriteGenre,
		ProfilePicture: r.ProfilePicture,
		EmailPublic:    r.EmailPublic,
	}
}
