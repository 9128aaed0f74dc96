package handlers

import (
	"context"
	"fmt"

	"polyamgraph/application/ports"
	"polyamgraph/application/queries"
	"polyamgraph/application/queries/bus"
	"polyamgraph/domain/core/entities"
	"polyamgraph/domain/services"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GetNetworkHandler executes one network render cycle: the viewer
// profile, the viewer's connections and the network-visible profiles are
// fetched concurrently, and graph assembly runs only once all of them
// have resolved. The fetches share the request context, so an abandoned
// request cancels the whole cycle instead of racing a newer one.
type GetNetworkHandler struct {
	profileRepo    ports.ProfileRepository
	connectionRepo ports.ConnectionRepository
	logger         *zap.Logger
}

// NewGetNetworkHandler creates a new network handler
func NewGetNetworkHandler(
	profileRepo ports.ProfileRepository,
	connectionRepo ports.ConnectionRepository,
	logger *zap.Logger,
) *GetNetworkHandler {
	return &GetNetworkHandler{
		profileRepo:    profileRepo,
		connectionRepo: connectionRepo,
		logger:         logger,
	}
}

// Handle implements bus.QueryHandler
func (h *GetNetworkHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetNetworkQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", query)
	}

	var (
		viewer      *entities.Profile
		connections []entities.Connection
		visible     []entities.Profile
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := h.profileRepo.FindByUserID(gctx, q.UserID)
		if err != nil {
			return err
		}
		viewer = p
		return nil
	})

	g.Go(func() error {
		conns, err := h.connectionRepo.ListForUser(gctx, q.UserID)
		if err != nil {
			return err
		}
		connections = conns
		return nil
	})

	g.Go(func() error {
		profiles, err := h.profileRepo.ListVisible(gctx)
		if err != nil {
			return err
		}
		visible = profiles
		return nil
	})

	if err := g.Wait(); err != nil {
		h.logger.Error("Network fetch cycle failed",
			zap.String("userID", q.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	// Second-degree edges need the records between the viewer's peers,
	// which the viewer-scoped fetch never returns. This lookup depends on
	// the first round's results, so it cannot join the errgroup above.
	all := connections
	if peers := otherPartyIDs(q.UserID, connections); len(peers) >= 2 {
		among, err := h.connectionRepo.ListAmong(ctx, peers)
		if err != nil {
			h.logger.Error("Peer connection fetch failed",
				zap.String("userID", q.UserID),
				zap.Error(err),
			)
			return nil, err
		}
		all = mergeConnections(connections, among)
	}

	graph := services.AssembleNetwork(viewer, all)

	return &queries.GetNetworkResult{
		Graph:       graph,
		Profile:     viewer,
		Connections: connections,
		Profiles:    visible,
	}, nil
}

// otherPartyIDs collects the distinct far-side user IDs from the
// viewer's connection list.
func otherPartyIDs(viewerID string, connections []entities.Connection) []string {
	seen := map[string]bool{}
	ids := []string{}
	for _, c := range connections {
		for _, id := range []string{c.RequesterID, c.AddresseeID} {
			if id != viewerID && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// mergeConnections appends records from extra that are not already
// present in base, keyed by connection ID.
func mergeConnections(base, extra []entities.Connection) []entities.Connection {
	known := make(map[string]bool, len(base))
	for _, c := range base {
		known[c.ID] = true
	}
	merged := base
	for _, c := range extra {
		if !known[c.ID] {
			known[c.ID] = true
			merged = append(merged, c)
		}
	}
	return merged
}
