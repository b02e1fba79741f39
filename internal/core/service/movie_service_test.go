package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

type stubCatalog struct {
	calls   int
	result  *ports.MovieSearchResult
	details json.RawMessage
	err     error
}

func (c *stubCatalog) Search(_ context.Context, _ string) (*ports.MovieSearchResult, error) {
	c.calls++
	return c.result, c.err
}

func (c *stubCatalog) Details(_ context.Context, _ string) (json.RawMessage, error) {
	c.calls++
	return c.details, c.err
}

func TestMovieService_Search_EmptyQuery(t *testing.T) {
	catalog := &stubCatalog{}
	svc := NewMovieService(catalog, discardLogger)

	_, err := svc.Search(context.Background(), "")
	if !errors.Is(err, domain.ErrValidation) || domain.MessageOf(err) != "Search query is required" {
		t.Fatalf("expected validation error, got %v", err)
	}
	if catalog.calls != 0 {
		t.Fatalf("catalog must not be contacted, got %d calls", catalog.calls)
	}
}

func TestMovieService_Search_WhitespaceQueryIsForwarded(t *testing.T) {
	catalog := &stubCatalog{result: &ports.MovieSearchResult{Results: []json.RawMessage{}}}
	svc := NewMovieService(catalog, discardLogger)

	if _, err := svc.Search(context.Background(), "   "); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if catalog.calls != 1 {
		t.Fatalf("expected one catalog call, got %d", catalog.calls)
	}
}

func TestMovieService_Search_Relays(t *testing.T) {
	catalog := &stubCatalog{result: &ports.MovieSearchResult{
		Results: []json.RawMessage{json.RawMessage(`{"id":27205}`)},
		Total:   1,
	}}
	svc := NewMovieService(catalog, discardLogger)

	res, err := svc.Search(context.Background(), "inception")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Total != 1 || len(res.Results) != 1 || catalog.calls != 1 {
		t.Fatalf("unexpected result %+v after %d calls", res, catalog.calls)
	}
}

func TestMovieService_Search_UpstreamFailure(t *testing.T) {
	svc := NewMovieService(&stubCatalog{err: errors.New("status 401: Invalid API key")}, discardLogger)

	_, err := svc.Search(context.Background(), "inception")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if domain.MessageOf(err) != "Failed to search movies" || domain.DetailsOf(err) == "" {
		t.Fatalf("unexpected message/details: %q / %q", domain.MessageOf(err), domain.DetailsOf(err))
	}
}

func TestMovieService_Details(t *testing.T) {
	catalog := &stubCatalog{details: json.RawMessage(`{"id":550,"title":"Fight Club"}`)}
	svc := NewMovieService(catalog, discardLogger)

	movie, err := svc.Details(context.Background(), "550")
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if string(movie) != `{"id":550,"title":"Fight Club"}` {
		t.Fatalf("details not relayed verbatim: %s", movie)
	}
}

func TestMovieService_Details_UpstreamFailure(t *testing.T) {
	svc := NewMovieService(&stubCatalog{err: errors.New("status 404")}, discardLogger)

	_, err := svc.Details(context.Background(), "999999999")
	if !errors.Is(err, domain.ErrUpstream) || domain.MessageOf(err) != "Failed to get movie details" {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
