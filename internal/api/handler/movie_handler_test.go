package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

func TestMovieHandler_Search(t *testing.T) {
	stub := &stubMovieService{
		searchFn: func(_ context.Context, query string) (*ports.MovieSearchResult, error) {
			if query != "batman" {
				t.Fatalf("unexpected query %q", query)
			}
			return &ports.MovieSearchResult{
				Results: []json.RawMessage{json.RawMessage(`{"id":268,"title":"Batman"}`)},
				Total:   120,
			}, nil
		},
	}
	h := NewMovieHandler(stub, nopLog)

	c, rec := newContext(http.MethodGet, "/api/movies/search?query=batman", "", nil)
	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decode(t, rec)
	if resp["success"] != true || resp["total"] != float64(120) || resp["query"] != "batman" {
		t.Fatalf("unexpected body %v", resp)
	}
	results := resp["results"].([]any)
	if len(results) != 1 || results[0].(map[string]any)["title"] != "Batman" {
		t.Fatalf("results not relayed: %v", results)
	}
}

func TestMovieHandler_Search_MissingQuery(t *testing.T) {
	stub := &stubMovieService{
		searchFn: func(context.Context, string) (*ports.MovieSearchResult, error) {
			return nil, domain.Validation("Search query is required")
		},
	}
	h := NewMovieHandler(stub, nopLog)

	c, rec := newContext(http.MethodGet, "/api/movies/search", "", nil)
	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertError(t, rec, http.StatusBadRequest, "Search query is required")
}

func TestMovieHandler_Details_UpstreamFailure(t *testing.T) {
	stub := &stubMovieService{
		detailsFn: func(context.Context, string) (json.RawMessage, error) {
			return nil, domain.Upstream("Failed to get movie details", errors.New("tmdb: status 404: not found"))
		},
	}
	h := NewMovieHandler(stub, nopLog)

	c, rec := newContext(http.MethodGet, "/api/movies/0", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("0")
	if err := h.Details(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertError(t, rec, http.StatusInternalServerError, "Failed to get movie details")
	if decode(t, rec)["details"] != "tmdb: status 404: not found" {
		t.Fatalf("expected upstream details, got %s", rec.Body.String())
	}
}

func TestMovieHandler_Details(t *testing.T) {
	stub := &stubMovieService{
		detailsFn: func(_ context.Context, id string) (json.RawMessage, error) {
			return json.RawMessage(`{"id":550,"runtime":139}`), nil
		},
	}
	h := NewMovieHandler(stub, nopLog)

	c, rec := newContext(http.MethodGet, "/api/movies/550", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("550")
	if err := h.Details(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	movie := decode(t, rec)["movie"].(map[string]any)
	if movie["runtime"] != float64(139) {
		t.Fatalf("movie not relayed: %v", movie)
	}
}
