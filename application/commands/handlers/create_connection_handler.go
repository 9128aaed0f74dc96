package handlers

import (
	"context"
	"fmt"

	"polyamgraph/application/commands"
	"polyamgraph/application/commands/bus"
	"polyamgraph/application/ports"
	"polyamgraph/domain/core/valueobjects"
	pkgerrors "polyamgraph/pkg/errors"

	"go.uber.org/zap"
)

// CreateConnectionHandler handles connection request creation. The
// self-connection and duplicate-pair invariants are enforced here, on
// the server, rather than trusted to the calling UI.
type CreateConnectionHandler struct {
	profileRepo    ports.ProfileRepository
	connectionRepo ports.ConnectionRepository
	logger         *zap.Logger
}

// NewCreateConnectionHandler creates a new handler
func NewCreateConnectionHandler(
	profileRepo ports.ProfileRepository,
	connectionRepo ports.ConnectionRepository,
	logger *zap.Logger,
) *CreateConnectionHandler {
	return &CreateConnectionHandler{
		profileRepo:    profileRepo,
		connectionRepo: connectionRepo,
		logger:         logger,
	}
}

// Handle implements bus.CommandHandler
func (h *CreateConnectionHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.CreateConnectionCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	target, err := h.profileRepo.FindByUsername(ctx, c.AddresseeUsername)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return pkgerrors.NewNotFoundError("user with that username")
		}
		return err
	}

	if target.UserID == c.RequesterID {
		return pkgerrors.NewValidationError("you cannot connect to yourself")
	}

	// One record per unordered pair, regardless of status or direction.
	existing, err := h.connectionRepo.FindBetween(ctx, c.RequesterID, target.UserID)
	if err != nil && !pkgerrors.IsNotFound(err) {
		return err
	}
	if existing != nil {
		return pkgerrors.NewConflictError("a connection with this user already exists")
	}

	relType := valueobjects.RelationshipType(c.RelationshipType)
	if err := h.connectionRepo.Create(ctx, c.RequesterID, target.UserID, relType); err != nil {
		return err
	}

	h.logger.Info("Connection request created",
		zap.String("requesterID", c.RequesterID),
		zap.String("addresseeID", target.UserID),
		zap.String("relationshipType", c.RelationshipType),
	)

	return nil
}
