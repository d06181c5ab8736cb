package models

import (
	"time"
)

// InteractionKind enumerates the recorded interaction types.
type InteractionKind string

const (
	InteractionLike     InteractionKind = "LIKE"
	InteractionComment  InteractionKind = "COMMENT"
	InteractionView     InteractionKind = "VIEW"
	InteractionShare    InteractionKind = "SHARE"
	InteractionFollow   InteractionKind = "FOLLOW"
	InteractionBookmark InteractionKind = "BOOKMARK"
)

// Valid reports whether k is one of the known interaction kinds.
func (k InteractionKind) Valid() bool {
	switch k {
	case InteractionLike, InteractionComment, InteractionView,
		InteractionShare, InteractionFollow, InteractionBookmark:
		return true
	}
	return false
}

// InteractionTarget identifies what an interaction is about: exactly one of
// a post or another user.
type InteractionTarget struct {
	PostID       *uint
	TargetUserID *uint
}

// PostTarget returns a target pointing at a post.
func PostTarget(postID uint) InteractionTarget {
	return InteractionTarget{PostID: &postID}
}

// UserTarget returns a target pointing at another user.
func UserTarget(userID uint) InteractionTarget {
	return InteractionTarget{TargetUserID: &userID}
}

// Validate enforces the exactly-one-of invariant.
func (t InteractionTarget) Validate() error {
	if t.PostID != nil && t.TargetUserID != nil {
		return NewValidationError("Interaction target must be a post or a user, not both")
	}
	if t.PostID == nil && t.TargetUserID == nil {
		return NewValidationError("Interaction target is required")
	}
	return nil
}

// UserInteraction is one row of the append-style interaction ledger: the
// canonical record of "has user X liked/commented/followed/viewed Y".
// Rows are idempotent markers, not repeated events: at most one row exists
// per (user, post, kind) and per (user, target_user, kind).
type UserInteraction struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `gorm:"not null;index;uniqueIndex:idx_interaction_post;uniqueIndex:idx_interaction_user" json:"user_id"`
	PostID       *uint           `gorm:"uniqueIndex:idx_interaction_post" json:"post_id,omitempty"`
	TargetUserID *uint           `gorm:"uniqueIndex:idx_interaction_user" json:"target_user_id,omitempty"`
	Kind         InteractionKind `gorm:"size:20;not null;uniqueIndex:idx_interaction_post;uniqueIndex:idx_interaction_user" json:"kind"`
	Metadata     JSONMap         `gorm:"type:json" json:"metadata,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`

	User       User  `gorm:"foreignKey:UserID" json:"-"`
	Post       *Post `gorm:"foreignKey:PostID" json:"-"`
	TargetUser *User `gorm:"foreignKey:TargetUserID" json:"-"`
}
