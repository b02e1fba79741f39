// Package tmdb is a thin client for The Movie Database v3 API. Responses are
// relayed without reshaping; nothing is cached.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ArjunShatkin/movie-sn-backend/internal/api/metrics"
	"github.com/ArjunShatkin/movie-sn-backend/internal/core/ports"
)

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	DefaultLanguage = "en-US"
	defaultTimeout  = 10 * time.Second
	maxBodyBytes    = 4 << 20
)

// Config holds the client settings.
type Config struct {
	APIKey   string
	BaseURL  string
	Language string
	Timeout  time.Duration
}

// Client implements ports.MovieCatalog.
type Client struct {
	http     *http.Client
	baseURL  string
	apiKey   string
	language string
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	language := cfg.Language
	if language == "" {
		language = DefaultLanguage
	}
	return &Client{
		http:     &http.Client{Timeout: timeout},
		baseURL:  baseURL,
		apiKey:   cfg.APIKey,
		language: language,
	}
}

// APIError is a non-2xx reply from TMDB.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tmdb: status %d", e.StatusCode)
	}
	return fmt.Sprintf("tmdb: status %d: %s", e.StatusCode, e.Message)
}

type searchResponse struct {
	Results      []json.RawMessage `json:"results"`
	TotalResults int               `json:"total_results"`
}

// Search queries /search/movie for the first page of matches.
func (c *Client) Search(ctx context.Context, query string) (*ports.MovieSearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")

	body, err := c.get(ctx, "search", "/search/movie", params)
	if err != nil {
		return nil, err
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("tmdb: decode search: %w", err)
	}
	if sr.Results == nil {
		sr.Results = []json.RawMessage{}
	}
	return &ports.MovieSearchResult{Results: sr.Results, Total: sr.TotalResults}, nil
}

// Details fetches /movie/{id} and returns the raw document.
func (c *Client) Details(ctx context.Context, id string) (json.RawMessage, error) {
	body, err := c.get(ctx, "details", "/movie/"+url.PathEscape(id), url.Values{})
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("tmdb: details response is not JSON")
	}
	return json.RawMessage(body), nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values) (body []byte, err error) {
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
		metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("tmdb: read %s: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			StatusMessage string `json:"status_message"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.StatusMessage
		}
		return nil, apiErr
	}
	return body, nil
}
