package domain

import "time"

const (
	MinRating = 1
	MaxRating = 10
)

// Author is the public slice of a User attached to reviews.
type Author struct {
	ID             string `json:"_id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture"`
}

// Review is a user's written opinion of a movie. A user may review the same
// movie any number of times.
type Review struct {
	ID          string
	UserID      string
	MovieID     string
	MovieTitle  string
	MoviePoster string
	Rating      int
	Title       string
	Content     string
	Spoilers    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Author is populated by lookups that join the users collection.
	Author *Author
}

// Validate checks a review before it is written.
func (r *Review) Validate() error {
	switch {
	case r.UserID == "":
		return Validation("Review author is required")
	case r.MovieID == "":
		return Validation("movieId is required")
	case r.MovieTitle == "":
		return Validation("movieTitle is required")
	case r.Rating < MinRating || r.Rating > MaxRating:
		return Validation("rating must be between 1 and 10")
	case r.Title == "":
		return Validation("title is required")
	case r.Content == "":
		return Validation("content is required")
	}
	return nil
}
