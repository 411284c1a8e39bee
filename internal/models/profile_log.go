package models

import "time"

// ProfileLog is an append-only audit row. Rows are never updated or
// deleted by this service.
type ProfileLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	User      uint      `gorm:"not null;index" json:"user"`
	Subject   string    `gorm:"size:255" json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}
