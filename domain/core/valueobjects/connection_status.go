package valueobjects

import (
	pkgerrors "polyamgraph/pkg/errors"
)

// ConnectionStatus represents the lifecycle state of a connection.
// A connection is created pending and either becomes accepted or is
// deleted outright; blocked records are kept but never rendered.
type ConnectionStatus string

const (
	StatusPending  ConnectionStatus = "pending"
	StatusAccepted ConnectionStatus = "accepted"
	StatusBlocked  ConnectionStatus = "blocked"
)

// ParseConnectionStatus validates a raw status string
func ParseConnectionStatus(raw string) (ConnectionStatus, error) {
	switch ConnectionStatus(raw) {
	case StatusPending, StatusAccepted, StatusBlocked:
		return ConnectionStatus(raw), nil
	default:
		return "", pkgerrors.NewValidationError("connection status must be one of: pending, accepted, blocked")
	}
}

// IsValid reports whether the status is a known connection status
func (s ConnectionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusBlocked:
		return true
	}
	return false
}

func (s ConnectionStatus) String() string {
	return string(s)
}
