package handlers

import (
	"net/http"

	"polyamgraph/application/commands"
	"polyamgraph/application/commands/bus"
	"polyamgraph/application/queries"
	querybus "polyamgraph/application/queries/bus"
	"polyamgraph/pkg/auth"
	"polyamgraph/pkg/common"
	pkgerrors "polyamgraph/pkg/errors"
	"polyamgraph/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConnectionHandler handles connection-related HTTP requests
type ConnectionHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *ConnectionHandler {
	return &ConnectionHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// CreateConnectionRequest represents the request body for sending a
// connection request
type CreateConnectionRequest struct {
	Username         string `json:"username" validate:"required,min=1,max=50"`
	RelationshipType string `json:"relationship_type" validate:"required,oneof=partner friend meta other"`
}

// List handles GET /connections
func (h *ConnectionHandler) List(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListConnectionsQuery{UserID: userCtx.UserID})
	if err != nil {
		h.logger.Error("Failed to list connections",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// Create handles POST /connections
func (h *ConnectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	var req CreateConnectionRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	cmd := commands.CreateConnectionCommand{
		RequesterID:       userCtx.UserID,
		AddresseeUsername: req.Username,
		RelationshipType:  req.RelationshipType,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Warn("Connection request rejected",
			zap.String("requesterID", userCtx.UserID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{
		"message": "connection request sent",
	})
}

// Accept handles POST /connections/{connectionID}/accept
func (h *ConnectionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, commands.ResponseAccept)
}

// Reject handles POST /connections/{connectionID}/reject
func (h *ConnectionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, commands.ResponseReject)
}

func (h *ConnectionHandler) respond(w http.ResponseWriter, r *http.Request, action string) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	connectionID := chi.URLParam(r, "connectionID")
	if _, err := uuid.Parse(connectionID); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid connection ID format"))
		return
	}

	cmd := commands.RespondConnectionCommand{
		UserID:       userCtx.UserID,
		ConnectionID: connectionID,
		Action:       action,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Warn("Connection response rejected",
			zap.String("connectionID", connectionID),
			zap.String("userID", userCtx.UserID),
			zap.String("action", action),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "connection " + action + "ed",
	})
}
