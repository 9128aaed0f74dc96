package valueobjects

import (
	pkgerrors "polyamgraph/pkg/errors"
)

// RelationshipType tags a connection with the kind of relationship it
// represents. "meta" is short for metamour: a partner's other partner.
type RelationshipType string

const (
	RelationshipPartner RelationshipType = "partner"
	RelationshipFriend  RelationshipType = "friend"
	RelationshipMeta    RelationshipType = "meta"
	RelationshipOther   RelationshipType = "other"
)

// Stable edge colors per relationship type. Unrecognized types fall back
// to the neutral color so a stale record still renders.
const (
	colorPartner = "#e11d78"
	colorFriend  = "#3b82f6"
	colorMeta    = "#8b5cf6"
	colorOther   = "#64748b"
	colorNeutral = "#94a3b8"
)

// ParseRelationshipType validates a raw relationship type string
func ParseRelationshipType(raw string) (RelationshipType, error) {
	switch RelationshipType(raw) {
	case RelationshipPartner, RelationshipFriend, RelationshipMeta, RelationshipOther:
		return RelationshipType(raw), nil
	default:
		return "", pkgerrors.NewValidationError("relationship type must be one of: partner, friend, meta, other")
	}
}

// IsValid reports whether the type is a known relationship type
func (t RelationshipType) IsValid() bool {
	switch t {
	case RelationshipPartner, RelationshipFriend, RelationshipMeta, RelationshipOther:
		return true
	}
	return false
}

// Color returns the stroke color used when rendering an edge of this type
func (t RelationshipType) Color() string {
	switch t {
	case RelationshipPartner:
		return colorPartner
	case RelationshipFriend:
		return colorFriend
	case RelationshipMeta:
		return colorMeta
	case RelationshipOther:
		return colorOther
	default:
		return colorNeutral
	}
}

func (t RelationshipType) String() string {
	return string(t)
}
