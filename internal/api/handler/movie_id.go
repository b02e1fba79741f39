package handler

import (
	"encoding/json"
	"fmt"
)

// movieID accepts the upstream movie id as either a JSON string or number.
type movieID string

func (m *movieID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*m = movieID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("movieId must be a string or number: %w", err)
	}
	*m = movieID(n.String())
	return nil
}
