package wallet

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Alexiva1995/Networkx-back/internal/models"
)

// GormEntrySource reads ledger rows from the wallet_comissions table.
type GormEntrySource struct {
	db *gorm.DB
}

func NewGormEntrySource(db *gorm.DB) *GormEntrySource {
	return &GormEntrySource{db: db}
}

func (s *GormEntrySource) EntriesByUser(ctx context.Context, userID uint) ([]models.WalletComission, error) {
	var entries []models.WalletComission
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GormUserSource reads users for the admin views.
type GormUserSource struct {
	db *gorm.DB
}

func NewGormUserSource(db *gorm.DB) *GormUserSource {
	return &GormUserSource{db: db}
}

func (s *GormUserSource) NonAdminUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("admin = ?", false).
		Order("id desc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormUserSource) Find(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
