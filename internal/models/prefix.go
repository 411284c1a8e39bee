package models

// Prefix is a country phone prefix.
type Prefix struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Country string `gorm:"size:255" json:"country"`
	Code    string `gorm:"size:8" json:"code"`
}
