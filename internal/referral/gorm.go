package referral

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Alexiva1995/Networkx-back/internal/models"
)

// GormDirectory backs the walker with the users table.
type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (d *GormDirectory) Downline(ctx context.Context, buyerID uint, side string) ([]models.User, error) {
	var users []models.User
	err := d.db.WithContext(ctx).
		Where("buyer_id = ? AND binary_side = ?", buyerID, side).
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (d *GormDirectory) Find(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := d.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
