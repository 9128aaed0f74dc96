package queries

import (
	"polyamgraph/domain/core/entities"
	"polyamgraph/domain/services"
	pkgerrors "polyamgraph/pkg/errors"
)

// GetNetworkQuery asks for everything one render cycle of the network
// view needs.
type GetNetworkQuery struct {
	UserID string `json:"user_id"`
}

// Validate validates the query
func (q GetNetworkQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	return nil
}

// GetNetworkResult bundles the assembled graph with the raw records the
// UI panels consume alongside it.
type GetNetworkResult struct {
	Graph       *services.NetworkGraph `json:"graph"`
	Profile     *entities.Profile      `json:"profile"`
	Connections []entities.Connection  `json:"connections"`
	Profiles    []entities.Profile     `json:"profiles"`
}
