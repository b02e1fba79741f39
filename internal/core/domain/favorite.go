package domain

import "time"

// Favorite marks a movie as one of a user's favorites. (UserID, MovieID) is unique.
type Favorite struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	MovieID     string    `json:"movieId"`
	MovieTitle  string    `json:"movieTitle"`
	MoviePoster string    `json:"moviePoster,omitempty"`
	AddedDate   time.Time `json:"addedDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate checks a favorite before it is written.
func (f *Favorite) Validate() error {
	switch {
	case f.UserID == "":
		return Validation("Favorite owner is required")
	case f.MovieID == "":
		return Validation("movieId is required")
	case f.MovieTitle == "":
		return Validation("movieTitle is required")
	}
	return nil
}
