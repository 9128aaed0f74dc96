package commands

import (
	"polyamgraph/domain/core/valueobjects"
	pkgerrors "polyamgraph/pkg/errors"
)

// CreateConnectionCommand sends a connection request to another user,
// addressed by username. The record is created pending; the addressee
// decides its fate.
type CreateConnectionCommand struct {
	RequesterID       string `json:"requester_id"`
	AddresseeUsername string `json:"addressee_username"`
	RelationshipType  string `json:"relationship_type"`
}

// Validate validates the command
func (c CreateConnectionCommand) Validate() error {
	if c.RequesterID == "" {
		return pkgerrors.NewValidationError("requester ID is required")
	}
	if c.AddresseeUsername == "" {
		return pkgerrors.NewValidationError("username is required")
	}
	if _, err := valueobjects.ParseRelationshipType(c.RelationshipType); err != nil {
		return err
	}
	return nil
}
