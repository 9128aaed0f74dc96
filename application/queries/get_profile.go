package queries

import (
	pkgerrors "polyamgraph/pkg/errors"
)

// GetProfileQuery asks for the caller's own profile
type GetProfileQuery struct {
	UserID string `json:"user_id"`
}

// Validate validates the query
func (q GetProfileQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	return nil
}
