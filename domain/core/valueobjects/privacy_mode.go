package valueobjects

import (
	pkgerrors "polyamgraph/pkg/errors"
)

// PrivacyMode controls who may see a profile's details. It is
// independent of ShowInNetwork, which only governs graph rendering.
type PrivacyMode string

const (
	PrivacyPublic  PrivacyMode = "public"
	PrivacyFriends PrivacyMode = "friends"
	PrivacyPrivate PrivacyMode = "private"
)

// ParsePrivacyMode validates a raw privacy mode string
func ParsePrivacyMode(raw string) (PrivacyMode, error) {
	switch PrivacyMode(raw) {
	case PrivacyPublic, PrivacyFriends, PrivacyPrivate:
		return PrivacyMode(raw), nil
	default:
		return "", pkgerrors.NewValidationError("privacy mode must be one of: public, friends, private")
	}
}

// IsValid reports whether the mode is a known privacy mode
func (m PrivacyMode) IsValid() bool {
	switch m {
	case PrivacyPublic, PrivacyFriends, PrivacyPrivate:
		return true
	}
	return false
}

func (m PrivacyMode) String() string {
	return string(m)
}
