package entities

import (
	"time"

	"github.com/google/uuid"
)

// ReactionKind distinguishes likes from dislikes
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Opposite returns the mutually exclusive kind.
func (k ReactionKind) Opposite() ReactionKind {
	if k == ReactionLike {
		return ReactionDislike
	}
	return ReactionLike
}

// Reaction is a single like or dislike held by a user on a startup
type Reaction struct {
	ID        uuid.UUID    `json:"id"`
	Kind      ReactionKind `json:"-"`
	StartupID uuid.UUID    `json:"startupId"`
	UserID    uuid.UUID    `json:"userId"`
	CreatedAt time.Time    `json:"createdAt"`
}
