package entities

import (
	"polyamgraph/domain/core/valueobjects"
)

// Connection is a directed relationship record between two profiles. It
// is created pending by the requester and either accepted or deleted by
// the addressee; once accepted it reads as symmetric for display.
//
// The endpoint profile snapshots come from the store's join and are
// explicitly optional: a consumer must treat a nil snapshot as "this
// endpoint could not be resolved" and degrade by omission.
type Connection struct {
	ID               string                        `json:"id"`
	RequesterID      string                        `json:"requester_id"`
	AddresseeID      string                        `json:"addressee_id"`
	Status           valueobjects.ConnectionStatus `json:"status"`
	RelationshipType valueobjects.RelationshipType `json:"relationship_type"`
	IsVisible        bool                          `json:"is_visible"`
	Notes            *string                       `json:"notes"`
	CreatedAt        string                        `json:"created_at"`
	RequesterProfile *Profile                      `json:"requester_profile,omitempty"`
	AddresseeProfile *Profile                      `json:"addressee_profile,omitempty"`
}

// Involves reports whether the given user is one of the two endpoints
func (c *Connection) Involves(userID string) bool {
	return c.RequesterID == userID || c.AddresseeID == userID
}

// Between reports whether the connection links the given unordered pair
func (c *Connection) Between(a, b string) bool {
	return (c.RequesterID == a && c.AddresseeID == b) ||
		(c.RequesterID == b && c.AddresseeID == a)
}

// OtherProfile resolves the endpoint profile opposite the viewer.
// Returns nil when the join did not produce a snapshot for that side.
func (c *Connection) OtherProfile(viewerID string) *Profile {
	if c.RequesterID == viewerID {
		return c.AddresseeProfile
	}
	return c.RequesterProfile
}

// IsDisplayable reports whether the connection participates in the
// rendered graph: accepted and not hidden.
func (c *Connection) IsDisplayable() bool {
	return c.Status == valueobjects.StatusAccepted && c.IsVisible
}

// IsPending reports whether the connection awaits a response
func (c *Connection) IsPending() bool {
	return c.Status == valueobjects.StatusPending
}
