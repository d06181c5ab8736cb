package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a reply on a post, optionally threaded under a parent comment.
// A parent comment, when present, must belong to the same post.
type Comment struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	PostID   uint     `gorm:"not null;index" json:"post_id"`
	Post     Post     `gorm:"foreignKey:PostID" json:"-"`
	UserID   uint     `gorm:"not null;index" json:"user_id"`
	User     User     `gorm:"foreignKey:UserID" json:"user"`
	ParentID *uint    `gorm:"index" json:"parent_id,omitempty"`
	Parent   *Comment `gorm:"foreignKey:ParentID" json:"-"`
	Content  string   `gorm:"type:text;not null" json:"content"`
	// Edited flips to true on the first update and never reverts.
	Edited    bool           `gorm:"default:false" json:"edited"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
