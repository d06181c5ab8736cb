package models

import (
	"time"
)

// Reaction kinds for likes.
const (
	ReactionLike = "like"
)

// Like represents a user's like on a post.
// The combination of UserID and PostID must be unique; toggling deletes and
// recreates the row rather than duplicating it. Rows are hard-deleted so the
// unique index stays honest across toggles.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"post_id"`
	Reaction  string    `gorm:"size:20;default:'like'" json:"reaction"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}
