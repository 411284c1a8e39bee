package models

import (
	"strings"
	"time"
)

// Binary placement sides. Fixed at enrollment, never reassigned.
const (
	SideLeft  = "L"
	SideRight = "R"
)

// DefaultMatrixType is assumed when a user has no plan assigned.
const DefaultMatrixType = 20

type User struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"size:255" json:"name"`
	LastName       string  `gorm:"size:255" json:"last_name"`
	UserName       string  `gorm:"size:255" json:"user_name"`
	Email          string  `gorm:"size:255;uniqueIndex" json:"email"`
	Phone          string  `gorm:"size:20" json:"phone"`
	PrefixID       *uint   `gorm:"index" json:"prefix_id"`
	Prefix         *Prefix `gorm:"foreignKey:PrefixID" json:"prefix,omitempty"`
	ProfilePicture string  `gorm:"size:255" json:"profile_picture"`

	// BuyerID points at the upline referrer; BinarySide is the L/R slot
	// under that referrer.
	BuyerID    *uint  `gorm:"index" json:"buyer_id"`
	BinarySide string `gorm:"size:1" json:"binary_side"`

	MatrixType *int `gorm:"column:matrix_type" json:"matrix_type"`

	Admin     bool `gorm:"default:false" json:"admin"`
	Status    int  `gorm:"default:1" json:"status"`
	Affiliate int  `gorm:"default:0" json:"affiliate"`

	CodeSecurity   *string    `gorm:"size:255" json:"-"`
	CodeVerifiedAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Plan returns the user's matrix plan, falling back to the default
// when none was ever assigned.
func (u *User) Plan() int {
	if u.MatrixType == nil {
		return DefaultMatrixType
	}
	return *u.MatrixType
}

// ShortName builds the lowercased "firstname lastname" form used by the
// admin exports, keeping only the first word of each part.
func (u *User) ShortName() string {
	first := strings.SplitN(strings.TrimSpace(u.Name), " ", 2)[0]
	last := strings.SplitN(strings.TrimSpace(u.LastName), " ", 2)[0]
	return strings.ToLower(first + " " + last)
}

func (u *User) StatusLabel() string {
	if u.Status == 1 {
		return "Active"
	}
	return "Inactive"
}

func (u *User) AffiliateLabel() string {
	if u.Affiliate == 1 {
		return "Affiliate"
	}
	return "No Affiliate"
}
