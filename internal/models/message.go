package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a direct message between two users. The read flag transitions
// false to true exactly once, when the receiver opens the thread.
type Message struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	SenderID   uint           `gorm:"not null;index" json:"sender_id"`
	Sender     User           `gorm:"foreignKey:SenderID" json:"sender"`
	ReceiverID uint           `gorm:"not null;index" json:"receiver_id"`
	Receiver   User           `gorm:"foreignKey:ReceiverID" json:"receiver"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	IsRead     bool           `gorm:"default:false" json:"is_read"`
	ReadAt     *time.Time     `json:"read_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// Conversation summarizes the exchange with one correspondent: the latest
// message either way plus how many of their messages remain unread. It is
// assembled at read time and never persisted.
type Conversation struct {
	Correspondent User    `json:"correspondent"`
	LastMessage   Message `json:"last_message"`
	UnreadCount   int     `json:"unread_count"`
}
