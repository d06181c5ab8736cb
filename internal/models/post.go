package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Post is a piece of content published by a user. Keywords are always a
// function of the current content (recomputed on every content change) and
// never edited directly.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `json:"image_url"`
	IsDraft  bool   `gorm:"default:false" json:"is_draft"`
	// Keywords holds the extracted tokens comma-space joined, the storage
	// shape the ranking queries expect.
	Keywords  string         `gorm:"size:255" json:"keywords"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"-" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"-" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked bool `gorm:"-" json:"liked"`
}

// KeywordList splits the stored keyword string back into tokens.
func (p *Post) KeywordList() []string {
	if p.Keywords == "" {
		return nil
	}
	return strings.Split(p.Keywords, ", ")
}

// SetKeywords stores the extracted tokens in the persisted column shape.
func (p *Post) SetKeywords(tokens []string) {
	p.Keywords = strings.Join(tokens, ", ")
}
