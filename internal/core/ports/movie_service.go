package ports

import (
	"context"
	"encoding/json"
)

type MovieService interface {
	Search(ctx context.Context, query string) (*MovieSearchResult, error)
	Details(ctx context.Context, id string) (json.RawMessage, error)
}
