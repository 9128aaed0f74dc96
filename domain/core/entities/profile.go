package entities

import (
	"polyamgraph/domain/core/valueobjects"
)

// Profile is a user's public identity in the network. It maps directly
// onto the Supabase `profiles` row; the username is unique and immutable
// after registration, everything else is owner-mutable.
type Profile struct {
	ID            string                   `json:"id"`
	UserID        string                   `json:"user_id"`
	Username      string                   `json:"username"`
	DisplayName   *string                  `json:"display_name"`
	Bio           *string                  `json:"bio"`
	AvatarURL     *string                  `json:"avatar_url"`
	PrivacyMode   valueobjects.PrivacyMode `json:"privacy_mode"`
	ShowInNetwork bool                     `json:"show_in_network"`
}

// DisplayLabel returns the name to render for this profile, falling back
// to the username when no display name is set.
func (p *Profile) DisplayLabel() string {
	if p.DisplayName != nil && *p.DisplayName != "" {
		return *p.DisplayName
	}
	return p.Username
}

// ProfileUpdate carries the owner-mutable profile fields. Nil fields are
// left untouched; the username is deliberately absent.
type ProfileUpdate struct {
	DisplayName   *string                   `json:"display_name,omitempty"`
	Bio           *string                   `json:"bio,omitempty"`
	PrivacyMode   *valueobjects.PrivacyMode `json:"privacy_mode,omitempty"`
	ShowInNetwork *bool                     `json:"show_in_network,omitempty"`
}

// IsEmpty reports whether the update would change nothing
func (u ProfileUpdate) IsEmpty() bool {
	return u.DisplayName == nil && u.Bio == nil && u.PrivacyMode == nil && u.ShowInNetwork == nil
}
