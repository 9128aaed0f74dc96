package queries

import (
	pkgerrors "polyamgraph/pkg/errors"
)

// SearchProfileQuery looks a profile up by its unique username
type SearchProfileQuery struct {
	Username string `json:"username"`
}

// Validate validates the query
func (q SearchProfileQuery) Validate() error {
	if q.Username == "" {
		return pkgerrors.NewValidationError("username is required")
	}
	return nil
}
