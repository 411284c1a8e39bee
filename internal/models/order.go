package models

import "time"

// Order statuses.
const (
	OrderStatusPending  = 0
	OrderStatusApproved = 1
)

type Order struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Amount float64 `gorm:"not null" json:"amount"`
	Status int     `gorm:"default:0" json:"status"`

	// CyborgID references the plan/product tier the order was placed for.
	CyborgID    uint    `gorm:"index" json:"cyborg_id"`
	Cyborg      *Cyborg `gorm:"foreignKey:CyborgID" json:"cyborg,omitempty"`
	Hash        string  `gorm:"size:64" json:"hash"`
	Description string  `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Cyborg is a purchasable plan/product tier.
type Cyborg struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
}
