package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ArjunShatkin/movie-sn-backend/internal/api/middleware"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

var nopLog = zerolog.Nop()

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*domain.User, error)
	currentFn  func(ctx context.Context, viewer *domain.Identity) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, viewer *domain.Identity) (*domain.User, error) {
	return s.currentFn(ctx, viewer)
}

type stubSessions struct {
	established *domain.Identity
	destroyed   bool
	err         error
}

func (s *stubSessions) Establish(_ echo.Context, id domain.Identity) error {
	if s.err != nil {
		return s.err
	}
	s.established = &id
	return nil
}

func (s *stubSessions) Destroy(_ echo.Context) error {
	if s.err != nil {
		return s.err
	}
	s.destroyed = true
	return nil
}

type stubUserService struct {
	getFn    func(ctx context.Context, viewer *domain.Identity, id string) (*domain.User, error)
	updateFn func(ctx context.Context, viewer *domain.Identity, id string, p domain.ProfilePatch) (*domain.User, error)
}

func (s *stubUserService) GetProfile(ctx context.Context, viewer *domain.Identity, id string) (*domain.User, error) {
	return s.getFn(ctx, viewer, id)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, viewer *domain.Identity, id string, p domain.ProfilePatch) (*domain.User, error) {
	return s.updateFn(ctx, viewer, id, p)
}

type stubMovieService struct {
	searchFn  func(ctx context.Context, query string) (*ports.MovieSearchResult, error)
	detailsFn func(ctx context.Context, id string) (json.RawMessage, error)
}

func (s *stubMovieService) Search(ctx context.Context, query string) (*ports.MovieSearchResult, error) {
	return s.searchFn(ctx, query)
}

func (s *stubMovieService) Details(ctx context.Context, id string) (json.RawMessage, error) {
	return s.detailsFn(ctx, id)
}

type stubReviewService struct {
	byMovieFn func(ctx context.Context, movieID string) ([]*domain.Review, error)
	byUserFn  func(ctx context.Context, userID string) ([]*domain.Review, error)
	createFn  func(ctx context.Context, viewer *domain.Identity, in ports.CreateReviewInput) (*domain.Review, error)
}

func (s *stubReviewService) ListByMovie(ctx context.Context, movieID string) ([]*domain.Review, error) {
	return s.byMovieFn(ctx, movieID)
}

func (s *stubReviewService) ListByUser(ctx context.Context, userID string) ([]*domain.Review, error) {
	return s.byUserFn(ctx, userID)
}

func (s *stubReviewService) Create(ctx context.Context, viewer *domain.Identity, in ports.CreateReviewInput) (*domain.Review, error) {
	return s.createFn(ctx, viewer, in)
}

type stubFavoriteService struct {
	listFn   func(ctx context.Context, userID string) ([]*domain.Favorite, error)
	createFn func(ctx context.Context, viewer *domain.Identity, in ports.CreateFavoriteInput) (*domain.Favorite, error)
	deleteFn func(ctx context.Context, viewer *domain.Identity, id string) error
}

func (s *stubFavoriteService) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	return s.listFn(ctx, userID)
}

func (s *stubFavoriteService) Create(ctx context.Context, viewer *domain.Identity, in ports.CreateFavoriteInput) (*domain.Favorite, error) {
	return s.createFn(ctx, viewer, in)
}

func (s *stubFavoriteService) Delete(ctx context.Context, viewer *domain.Identity, id string) error {
	return s.deleteFn(ctx, viewer, id)
}

// newContext builds an echo context for method/target with an optional JSON
// body and session identity.
func newContext(method, target, body string, id *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != nil {
		c.Set(middleware.IdentityKey, id)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return resp
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	resp := decode(t, rec)
	if resp["success"] != false || resp["error"] != message {
		t.Fatalf("unexpected error body: %v", resp)
	}
}

var aliceID = &domain.Identity{UserID: "u1", Username: "alice", Role: domain.RoleCasual}
