package commands

import (
	"polyamgraph/domain/core/entities"
	"polyamgraph/domain/core/valueobjects"
	pkgerrors "polyamgraph/pkg/errors"
)

// UpdateProfileCommand applies a partial update to the caller's own
// profile. The username is immutable and has no field here.
type UpdateProfileCommand struct {
	UserID        string  `json:"user_id"`
	DisplayName   *string `json:"display_name,omitempty"`
	Bio           *string `json:"bio,omitempty"`
	PrivacyMode   *string `json:"privacy_mode,omitempty"`
	ShowInNetwork *bool   `json:"show_in_network,omitempty"`
}

// Validate validates the command
func (c UpdateProfileCommand) Validate() error {
	if c.UserID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	if c.PrivacyMode != nil {
		if _, err := valueobjects.ParsePrivacyMode(*c.PrivacyMode); err != nil {
			return err
		}
	}
	if c.DisplayName != nil && len(*c.DisplayName) > 100 {
		return pkgerrors.NewValidationError("display name must be at most 100 characters")
	}
	if c.Bio != nil && len(*c.Bio) > 1000 {
		return pkgerrors.NewValidationError("bio must be at most 1000 characters")
	}
	return nil
}

// ToUpdate converts the command into the repository update shape
func (c UpdateProfileCommand) ToUpdate() entities.ProfileUpdate {
	update := entities.ProfileUpdate{
		DisplayName:   c.DisplayName,
		Bio:           c.Bio,
		ShowInNetwork: c.ShowInNetwork,
	}
	if c.PrivacyMode != nil {
		mode := valueobjects.PrivacyMode(*c.PrivacyMode)
		update.PrivacyMode = &mode
	}
	return update
}
