package commands

import (
	pkgerrors "polyamgraph/pkg/errors"
)

// Responses to a pending connection request
const (
	ResponseAccept = "accept"
	ResponseReject = "reject"
)

// RespondConnectionCommand accepts or rejects a pending connection
// request. Only the addressee may respond; accepting flips the status,
// rejecting deletes the record.
type RespondConnectionCommand struct {
	UserID       string `json:"user_id"`
	ConnectionID string `json:"connection_id"`
	Action       string `json:"action"`
}

// Validate validates the command
func (c RespondConnectionCommand) Validate() error {
	if c.UserID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	if c.ConnectionID == "" {
		return pkgerrors.NewValidationError("connection ID is required")
	}
	if c.Action != ResponseAccept && c.Action != ResponseReject {
		return pkgerrors.NewValidationError("action must be accept or reject")
	}
	return nil
}
