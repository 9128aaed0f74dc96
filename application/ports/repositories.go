package ports

import (
	"context"

	"polyamgraph/domain/core/entities"
	"polyamgraph/domain/core/valueobjects"
)

// ProfileRepository defines the interface for profile persistence.
// This is a port in hexagonal architecture - the domain doesn't know
// about the Supabase implementation behind it.
type ProfileRepository interface {
	// FindByUserID retrieves a profile by its owner's user ID
	FindByUserID(ctx context.Context, userID string) (*entities.Profile, error)

	// FindByUsername retrieves a profile by its unique username
	FindByUsername(ctx context.Context, username string) (*entities.Profile, error)

	// ListVisible retrieves all profiles flagged for the network view
	ListVisible(ctx context.Context) ([]entities.Profile, error)

	// Update applies the owner-mutable fields to a profile
	Update(ctx context.Context, userID string, update entities.ProfileUpdate) error
}

// ConnectionRepository defines the interface for connection persistence
type ConnectionRepository interface {
	// ListForUser retrieves every connection involving the user, with
	// both endpoint profile snapshots joined in
	ListForUser(ctx context.Context, userID string) ([]entities.Connection, error)

	// FindByID retrieves a single connection record
	FindByID(ctx context.Context, connectionID string) (*entities.Connection, error)

	// FindBetween retrieves the connection for an unordered pair of
	// users in any status, or a not-found error
	FindBetween(ctx context.Context, userA, userB string) (*entities.Connection, error)

	// ListAmong retrieves connections whose endpoints are both within
	// the given user set, without profile snapshots. Used to resolve
	// second-degree links between the viewer's connections.
	ListAmong(ctx context.Context, userIDs []string) ([]entities.Connection, error)

	// Create inserts a new pending connection request
	Create(ctx context.Context, requesterID, addresseeID string, relType valueobjects.RelationshipType) error

	// UpdateStatus transitions a connection's status
	UpdateStatus(ctx context.Context, connectionID string, status valueobjects.ConnectionStatus) error

	// Delete removes a connection record
	Delete(ctx context.Context, connectionID string) error
}
