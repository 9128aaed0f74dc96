package handlers

import (
	"net/http"

	"polyamgraph/application/queries"
	querybus "polyamgraph/application/queries/bus"
	"polyamgraph/pkg/auth"
	"polyamgraph/pkg/common"

	"go.uber.org/zap"
)

// NetworkHandler serves the network graph read model
type NetworkHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewNetworkHandler creates a new network handler
func NewNetworkHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *NetworkHandler {
	return &NetworkHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// GetNetwork handles GET /network
func (h *NetworkHandler) GetNetwork(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetNetworkQuery{UserID: userCtx.UserID})
	if err != nil {
		h.logger.Error("Failed to build network view",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
