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

	"go.uber.org/zap"
)

const maxBodyBytes = 64 * 1024

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// UpdateProfileRequest represents the request body for updating a profile
type UpdateProfileRequest struct {
	DisplayName   *string `json:"display_name,omitempty" validate:"omitempty,max=100"`
	Bio           *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	PrivacyMode   *string `json:"privacy_mode,omitempty" validate:"omitempty,oneof=public friends private"`
	ShowInNetwork *bool   `json:"show_in_network,omitempty"`
}

// GetMe handles GET /profiles/me
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetProfileQuery{UserID: userCtx.UserID})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// UpdateMe handles PUT /profiles/me
func (h *ProfileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	var req UpdateProfileRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	cmd := commands.UpdateProfileCommand{
		UserID:        userCtx.UserID,
		DisplayName:   req.DisplayName,
		Bio:           req.Bio,
		PrivacyMode:   req.PrivacyMode,
		ShowInNetwork: req.ShowInNetwork,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to update profile",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "profile updated",
	})
}

// Search handles GET /profiles/search?username=
func (h *ProfileHandler) Search(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.GetUserFromContext(r.Context()); err != nil {
		common.RespondAppError(w, err)
		return
	}

	username := r.URL.Query().Get("username")
	if username == "" {
		common.RespondAppError(w, pkgerrors.NewValidationError("username query parameter is required"))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.SearchProfileQuery{Username: username})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
