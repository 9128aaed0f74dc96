package handlers

import (
	"context"
	"fmt"

	"polyamgraph/application/ports"
	"polyamgraph/application/queries"
	"polyamgraph/application/queries/bus"

	"go.uber.org/zap"
)

// GetProfileHandler returns the caller's own profile
type GetProfileHandler struct {
	profileRepo ports.ProfileRepository
	logger      *zap.Logger
}

// NewGetProfileHandler creates a new handler
func NewGetProfileHandler(profileRepo ports.ProfileRepository, logger *zap.Logger) *GetProfileHandler {
	return &GetProfileHandler{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Handle implements bus.QueryHandler
func (h *GetProfileHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetProfileQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	return h.profileRepo.FindByUserID(ctx, q.UserID)
}
