package supabase

import (
	"context"
	"fmt"

	"polyamgraph/application/ports"
	"polyamgraph/domain/core/entities"
	"polyamgraph/domain/core/valueobjects"
	pkgerrors "polyamgraph/pkg/errors"
	"polyamgraph/pkg/utils"

	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// ConnectionRepository implements ports.ConnectionRepository over
// PostgREST.
type ConnectionRepository struct {
	client *supa.Client
	logger *zap.Logger
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(client *supa.Client, logger *zap.Logger) ports.ConnectionRepository {
	return &ConnectionRepository{
		client: client,
		logger: logger,
	}
}

// connectionInsert is the write shape for new connection requests
type connectionInsert struct {
	RequesterID      string `json:"requester_id"`
	AddresseeID      string `json:"addressee_id"`
	RelationshipType string `json:"relationship_type"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
}

// ListForUser retrieves every connection involving the user, with both
// endpoint profile snapshots joined in
func (r *ConnectionRepository) ListForUser(ctx context.Context, userID string) ([]entities.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []entities.Connection
	_, err := r.client.From(connectionsTable).
		Select(connectionSelect, "", false).
		Or(fmt.Sprintf("requester_id.eq.%s,addressee_id.eq.%s", userID, userID), "").
		ExecuteTo(&rows)
	if err != nil {
		r.logger.Error("Connection list failed",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return nil, pkgerrors.NewDatabaseError("list connections", err)
	}

	if rows == nil {
		rows = []entities.Connection{}
	}
	return rows, nil
}

// FindByID retrieves a single connection record
func (r *ConnectionRepository) FindByID(ctx context.Context, connectionID string) (*entities.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []entities.Connection
	_, err := r.client.From(connectionsTable).
		Select("*", "", false).
		Eq("id", connectionID).
		ExecuteTo(&rows)
	if err != nil {
		r.logger.Error("Connection lookup failed",
			zap.String("connectionID", connectionID),
			zap.Error(err),
		)
		return nil, pkgerrors.NewDatabaseError("find connection", err)
	}

	if len(rows) == 0 {
		return nil, pkgerrors.NewNotFoundError("connection")
	}

	return &rows[0], nil
}

// FindBetween retrieves the connection for an unordered pair of users
// in any status, or a not-found error
func (r *ConnectionRepository) FindBetween(ctx context.Context, userA, userB string) (*entities.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filter := fmt.Sprintf(
		"and(requester_id.eq.%s,addressee_id.eq.%s),and(requester_id.eq.%s,addressee_id.eq.%s)",
		userA, userB, userB, userA,
	)

	var rows []entities.Connection
	_, err := r.client.From(connectionsTable).
		Select("*", "", false).
		Or(filter, "").
		ExecuteTo(&rows)
	if err != nil {
		r.logger.Error("Connection pair lookup failed", zap.Error(err))
		return nil, pkgerrors.NewDatabaseError("find connection between users", err)
	}

	if len(rows) == 0 {
		return nil, pkgerrors.NewNotFoundError("connection")
	}

	return &rows[0], nil
}

// ListAmong retrieves connections whose endpoints both fall inside the
// given user set. Profile snapshots are not joined: callers already
// hold the profiles for these users.
func (r *ConnectionRepository) ListAmong(ctx context.Context, userIDs []string) ([]entities.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(userIDs) < 2 {
		return []entities.Connection{}, nil
	}

	var rows []entities.Connection
	_, err := r.client.From(connectionsTable).
		Select("*", "", false).
		In("requester_id", userIDs).
		In("addressee_id", userIDs).
		ExecuteTo(&rows)
	if err != nil {
		r.logger.Error("Connection set lookup failed",
			zap.Int("userCount", len(userIDs)),
			zap.Error(err),
		)
		return nil, pkgerrors.NewDatabaseError("list connections among users", err)
	}

	if rows == nil {
		rows = []entities.Connection{}
	}
	return rows, nil
}

// Create inserts a new pending connection request
func (r *ConnectionRepository) Create(ctx context.Context, requesterID, addresseeID string, relType valueobjects.RelationshipType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	record := connectionInsert{
		RequesterID:      requesterID,
		AddresseeID:      addresseeID,
		RelationshipType: relType.String(),
		Status:           valueobjects.StatusPending.String(),
		CreatedAt:        utils.NowRFC3339(),
	}

	_, _, err := r.client.From(connectionsTable).
		Insert(record, false, "", "", "").
		Execute()
	if err != nil {
		r.logger.Error("Connection insert failed",
			zap.String("requesterID", requesterID),
			zap.String("addresseeID", addresseeID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("create connection", err)
	}

	return nil
}

// UpdateStatus transitions a connection's status
func (r *ConnectionRepository) UpdateStatus(ctx context.Context, connectionID string, status valueobjects.ConnectionStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, _, err := r.client.From(connectionsTable).
		Update(map[string]string{"status": status.String()}, "", "").
		Eq("id", connectionID).
		Execute()
	if err != nil {
		r.logger.Error("Connection status update failed",
			zap.String("connectionID", connectionID),
			zap.String("status", status.String()),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("update connection status", err)
	}

	return nil
}

// Delete removes a connection record
func (r *ConnectionRepository) Delete(ctx context.Context, connectionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, _, err := r.client.From(connectionsTable).
		Delete("", "").
		Eq("id", connectionID).
		Execute()
	if err != nil {
		r.logger.Error("Connection delete failed",
			zap.String("connectionID", connectionID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("delete connection", err)
	}

	return nil
}
