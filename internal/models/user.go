// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// OnlineWindow is how recently a user must have been seen to count as
// online.
const OnlineWindow = 15 * time.Minute

// User represents a member of the platform. Membership is invite-gated:
// every account except the seeded founders was created against an invite
// code.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"unique;not null" json:"username"`
	Email       string         `gorm:"unique;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	Bio         string         `json:"bio"`
	Avatar      string         `json:"avatar"`
	CoverImage  string         `json:"cover_image"`
	Verified    bool           `gorm:"default:false" json:"verified"`
	LastSeen    time.Time      `json:"last_seen"`
	SocialLinks JSONMap        `gorm:"type:json" json:"social_links,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Posts       []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`

	// FollowerCount is not persisted; computed at query time
	FollowerCount int `gorm:"-" json:"follower_count"`
	// FollowingCount is not persisted; computed at query time
	FollowingCount int `gorm:"-" json:"following_count"`
	// PostCount is not persisted; computed at query time
	PostCount int `gorm:"-" json:"post_count"`
}

// IsOnline reports whether the user was seen within the online window.
func (u *User) IsOnline(now time.Time) bool {
	return now.Sub(u.LastSeen) < OnlineWindow
}

// Follow is one edge of the follow graph. The composite key keeps the edge
// unique per pair.
type Follow struct {
	FollowerID uint      `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	FolloweeID uint      `gorm:"primaryKey;autoIncrement:false" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"-"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"-"`
}
