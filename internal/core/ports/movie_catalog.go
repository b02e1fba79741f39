package ports

import (
	"context"
	"encoding/json"
)

// MovieSearchResult is a page of upstream search results, relayed verbatim.
type MovieSearchResult struct {
	Results []json.RawMessage
	Total   int
}

// MovieCatalog is the external movie-metadata service.
type MovieCatalog interface {
	Search(ctx context.Context, query string) (*MovieSearchResult, error)
	Details(ctx context.Context, id string) (json.RawMessage, error)
}
