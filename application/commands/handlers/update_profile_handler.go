package handlers

import (
	"context"
	"fmt"

	"polyamgraph/application/commands"
	"polyamgraph/application/commands/bus"
	"polyamgraph/application/ports"

	"go.uber.org/zap"
)

// UpdateProfileHandler handles partial updates of the caller's profile
type UpdateProfileHandler struct {
	profileRepo ports.ProfileRepository
	logger      *zap.Logger
}

// NewUpdateProfileHandler creates a new handler
func NewUpdateProfileHandler(profileRepo ports.ProfileRepository, logger *zap.Logger) *UpdateProfileHandler {
	return &UpdateProfileHandler{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Handle implements bus.CommandHandler
func (h *UpdateProfileHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.UpdateProfileCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	update := c.ToUpdate()
	if update.IsEmpty() {
		return nil
	}

	if err := h.profileRepo.Update(ctx, c.UserID, update); err != nil {
		return err
	}

	h.logger.Info("Profile updated", zap.String("userID", c.UserID))
	return nil
}
