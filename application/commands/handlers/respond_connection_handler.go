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

// RespondConnectionHandler handles accepting or rejecting a pending
// connection request.
type RespondConnectionHandler struct {
	connectionRepo ports.ConnectionRepository
	logger         *zap.Logger
}

// NewRespondConnectionHandler creates a new handler
func NewRespondConnectionHandler(connectionRepo ports.ConnectionRepository, logger *zap.Logger) *RespondConnectionHandler {
	return &RespondConnectionHandler{
		connectionRepo: connectionRepo,
		logger:         logger,
	}
}

// Handle implements bus.CommandHandler
func (h *RespondConnectionHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.RespondConnectionCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	conn, err := h.connectionRepo.FindByID(ctx, c.ConnectionID)
	if err != nil {
		return err
	}

	// Only the addressee decides the fate of a request.
	if conn.AddresseeID != c.UserID {
		return pkgerrors.NewForbiddenError("only the addressee may respond to this request")
	}

	if !conn.IsPending() {
		return pkgerrors.NewConflictError("connection request is no longer pending")
	}

	switch c.Action {
	case commands.ResponseAccept:
		err = h.connectionRepo.UpdateStatus(ctx, c.ConnectionID, valueobjects.StatusAccepted)
	case commands.ResponseReject:
		err = h.connectionRepo.Delete(ctx, c.ConnectionID)
	}
	if err != nil {
		return err
	}

	h.logger.Info("Connection request resolved",
		zap.String("connectionID", c.ConnectionID),
		zap.String("userID", c.UserID),
		zap.String("action", c.Action),
	)

	return nil
}
