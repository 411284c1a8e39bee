package models

import "time"

// Ledger entry types.
const (
	WalletTypeCommission    = 0
	WalletTypeTrading       = 1
	WalletTypeCommissionAlt = 2
	WalletTypeRefund        = 3
)

// Ledger entry statuses. StatusAvailable entries count toward the
// withdrawable balance.
const (
	WalletStatusAvailable  = 0
	WalletStatusRequested  = 1
	WalletStatusPaid       = 2
	WalletStatusVoided     = 3
	WalletStatusSubtracted = 4
)

// Entries eligible for withdrawal carry AvailableWithdraw = 0; the flag
// flips to 1 once the amount has been paid out.
type WalletComission struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	// BuyerID is the counterparty whose activity generated the entry.
	BuyerID *uint `gorm:"index" json:"buyer_id"`

	Amount          float64 `gorm:"not null" json:"amount"`
	AmountAvailable float64 `json:"amount_available"`

	Type              int    `gorm:"default:0" json:"type"`
	Status            int    `gorm:"default:0;index" json:"status"`
	AvailableWithdraw int    `gorm:"column:avaliable_withdraw;default:0" json:"avaliable_withdraw"`
	Description       string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}

// Column name keeps the historical misspelling the frontend depends on.
func (WalletComission) TableName() string {
	return "wallet_comissions"
}

var walletStatusNames = map[int]string{
	WalletStatusAvailable:  "Available",
	WalletStatusRequested:  "Requested",
	WalletStatusPaid:       "Paid",
	WalletStatusVoided:     "Voided",
	WalletStatusSubtracted: "Subtracted",
}

// StatusName returns the display name for the entry status.
func (w *WalletComission) StatusName() string {
	if name, ok := walletStatusNames[w.Status]; ok {
		return name
	}
	return "Available"
}
