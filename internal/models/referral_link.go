package models

import "time"

// Referral link statuses.
const ReferalLinkStatusActive = 1

// ReferalLink is a shareable signup URL, one per user per active plan.
type ReferalLink struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	UserID   uint    `gorm:"not null;index" json:"user_id"`
	CyborgID uint    `gorm:"index" json:"cyborg_id"`
	Cyborg   *Cyborg `gorm:"foreignKey:CyborgID" json:"cyborg,omitempty"`
	Link     string  `gorm:"size:512" json:"link"`
	Status   int     `gorm:"default:1" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
