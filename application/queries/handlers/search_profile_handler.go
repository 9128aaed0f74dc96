package handlers

import (
	"context"
	"fmt"

	"polyamgraph/application/ports"
	"polyamgraph/application/queries"
	"polyamgraph/application/queries/bus"

	"go.uber.org/zap"
)

// SearchProfileHandler looks a profile up by username
type SearchProfileHandler struct {
	profileRepo ports.ProfileRepository
	logger      *zap.Logger
}

// NewSearchProfileHandler creates a new handler
func NewSearchProfileHandler(profileRepo ports.ProfileRepository, logger *zap.Logger) *SearchProfileHandler {
	return &SearchProfileHandler{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Handle implements bus.QueryHandler
func (h *SearchProfileHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.SearchProfileQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	return h.profileRepo.FindByUsername(ctx, q.Username)
}
