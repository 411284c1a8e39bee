package models

import (
	"fmt"
	"time"
)

// Liquidaction is a withdrawal request. The name keeps the historical
// table spelling.
type Liquidaction struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// WalletUsed holds the encrypted destination wallet.
	WalletUsed string  `gorm:"size:512" json:"wallet_used"`
	Hash       string  `gorm:"size:64" json:"hash"`
	Amount     float64 `json:"amount"`
	Status     int     `gorm:"default:0" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayHash falls back to the zero-padded id when no hash was stored.
func (l *Liquidaction) DisplayHash() string {
	if l.Hash != "" {
		return l.Hash
	}
	return fmt.Sprintf("%04d", l.ID)
}
