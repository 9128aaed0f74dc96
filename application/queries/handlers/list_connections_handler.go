package handlers

import (
	"context"
	"fmt"
	"sort"
	"time"

	"polyamgraph/application/ports"
	"polyamgraph/application/queries"
	"polyamgraph/application/queries/bus"
	"polyamgraph/domain/core/entities"
	"polyamgraph/domain/core/valueobjects"
	"polyamgraph/pkg/utils"

	"go.uber.org/zap"
)

// ListConnectionsHandler partitions the caller's connections for the
// connections panel.
type ListConnectionsHandler struct {
	connectionRepo ports.ConnectionRepository
	logger         *zap.Logger
}

// NewListConnectionsHandler creates a new handler
func NewListConnectionsHandler(connectionRepo ports.ConnectionRepository, logger *zap.Logger) *ListConnectionsHandler {
	return &ListConnectionsHandler{
		connectionRepo: connectionRepo,
		logger:         logger,
	}
}

// Handle implements bus.QueryHandler
func (h *ListConnectionsHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.ListConnectionsQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	connections, err := h.connectionRepo.ListForUser(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	result := &queries.ListConnectionsResult{
		PendingIncoming: []entities.Connection{},
		PendingOutgoing: []entities.Connection{},
		Active:          []entities.Connection{},
	}

	for _, c := range connections {
		switch {
		case c.Status == valueobjects.StatusPending && c.AddresseeID == q.UserID:
			result.PendingIncoming = append(result.PendingIncoming, c)
		case c.Status == valueobjects.StatusPending && c.RequesterID == q.UserID:
			result.PendingOutgoing = append(result.PendingOutgoing, c)
		case c.Status == valueobjects.StatusAccepted:
			result.Active = append(result.Active, c)
		}
	}

	sortNewestFirst(result.PendingIncoming)
	sortNewestFirst(result.PendingOutgoing)
	sortNewestFirst(result.Active)

	return result, nil
}

// sortNewestFirst orders connections by creation time, newest first.
// Records with unparseable timestamps sink to the end.
func sortNewestFirst(connections []entities.Connection) {
	sort.SliceStable(connections, func(i, j int) bool {
		return createdAt(connections[i]).After(createdAt(connections[j]))
	})
}

func createdAt(c entities.Connection) time.Time {
	t, err := utils.ParseRFC3339(c.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
