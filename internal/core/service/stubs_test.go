package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User // by ID
	nextID    int
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, p domain.ProfilePatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if p.Email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *p.Email {
				return nil, domain.ErrUserExists
			}
		}
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Expertise != nil {
		u.Expertise = *p.Expertise
	}
	if p.FavoriteGenre != nil {
		u.FavoriteGenre = *p.FavoriteGenre
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
	if p.EmailPublic != nil {
		u.EmailPublic = *p.EmailPublic
	}
	return cloneUser(u), nil
}

// ---------------------------------------------------------------------------
// In-memory review repository
// ---------------------------------------------------------------------------

type stubReviewRepo struct {
	reviews []*domain.Review
	authors map[string]*domain.Author
	nextID  int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{authors: make(map[string]*domain.Author)}
}

func (r *stubReviewRepo) Create(_ context.Context, rv *domain.Review) error {
	r.nextID++
	rv.ID = fmt.Sprintf("review-%d", r.nextID)
	clone := *rv
	r.reviews = append(r.reviews, &clone)
	return nil
}

func (r *stubReviewRepo) withAuthor(rv *domain.Review) *domain.Review {
	clone := *rv
	clone.Author = r.authors[rv.UserID]
	return &clone
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	for _, rv := range r.reviews {
		if rv.ID == id {
			return r.withAuthor(rv), nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

// ListByMovie returns reviews in insertion order; the service owns ordering.
func (r *stubReviewRepo) ListByMovie(_ context.Context, movieID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rv := range r.reviews {
		if rv.MovieID == movieID {
			out = append(out, r.withAuthor(rv))
		}
	}
	return out, nil
}

func (r *stubReviewRepo) ListByUser(_ context.Context, userID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rv := range r.reviews {
		if rv.UserID == userID {
			clone := *rv
			out = append(out, &clone)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// In-memory favorite repository
// ---------------------------------------------------------------------------

type stubFavoriteRepo struct {
	favs    map[string]*domain.Favorite
	nextID  int
	deleted []string
}

func newStubFavoriteRepo() *stubFavoriteRepo {
	return &stubFavoriteRepo{favs: make(map[string]*domain.Favorite)}
}

func (r *stubFavoriteRepo) Create(_ context.Context, f *domain.Favorite) error {
	for _, existing := range r.favs {
		if existing.UserID == f.UserID && existing.MovieID == f.MovieID {
			return domain.ErrFavoriteExists
		}
	}
	r.nextID++
	f.ID = fmt.Sprintf("fav-%d", r.nextID)
	clone := *f
	r.favs[f.ID] = &clone
	return nil
}

func (r *stubFavoriteRepo) FindByID(_ context.Context, id string) (*domain.Favorite, error) {
	f, ok := r.favs[id]
	if !ok {
		return nil, domain.ErrFavoriteNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFavoriteRepo) ListByUser(_ context.Context, userID string) ([]*domain.Favorite, error) {
	var out []*domain.Favorite
	for _, f := range r.favs {
		if f.UserID == userID {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubFavoriteRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	delete(r.favs, id)
	return nil
}

// steppingClock returns a clock that advances one minute per call.
func steppingClock() func() time.Time {
	t := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}
