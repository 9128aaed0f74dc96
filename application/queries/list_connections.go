package queries

import (
	"polyamgraph/domain/core/entities"
	pkgerrors "polyamgraph/pkg/errors"
)

// ListConnectionsQuery asks for the caller's connections, partitioned
// the way the connections panel displays them.
type ListConnectionsQuery struct {
	UserID string `json:"user_id"`
}

// Validate validates the query
func (q ListConnectionsQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	return nil
}

// ListConnectionsResult partitions connections by how the caller relates
// to them: requests awaiting the caller's response, requests the caller
// sent that are still open, and established connections.
type ListConnectionsResult struct {
	PendingIncoming []entities.Connection `json:"pending_incoming"`
	PendingOutgoing []entities.Connection `json:"pending_outgoing"`
	Active          []entities.Connection `json:"active"`
}
