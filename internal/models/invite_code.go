package models

import (
	"time"
)

// InviteQuota is the lifetime number of codes a user may issue. Redeeming a
// code does not free a slot; the quota counts total codes ever created.
const InviteQuota = 5

// InviteCode gates registration. A code starts Active (UsedByID nil) and
// moves to Used exactly once; the transition is a guarded compare-and-set so
// two concurrent redemptions cannot both succeed. If the redeemer account is
// later deleted, UsedByID is nulled but UsedAt stays set, so the code remains
// consumed.
type InviteCode struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Code        string     `gorm:"uniqueIndex;not null;size:10" json:"code"`
	CreatedByID uint       `gorm:"not null;index" json:"created_by_id"`
	CreatedBy   User       `gorm:"foreignKey:CreatedByID" json:"-"`
	UsedByID    *uint      `json:"used_by_id,omitempty"`
	UsedBy      *User      `gorm:"foreignKey:UsedByID" json:"used_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UsedAt      *time.Time `json:"used_at,omitempty"`
}

// TableName specifies the table name for InviteCode model
func (InviteCode) TableName() string {
	return "invite_codes"
}

// IsUsed reports whether the code has been consumed.
func (c *InviteCode) IsUsed() bool {
	return c.UsedAt != nil
}
