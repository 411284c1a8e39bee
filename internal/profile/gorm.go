package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Alexiva1995/Networkx-back/internal/models"
)

// GormUserStore persists users through the ORM.
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) Find(ctx context.Context, id uint) (*models.User, error) {
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

func (s *GormUserStore) Save(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

// GormLogStore appends profile audit rows. Rows are write-only from the
// application's point of view.
type GormLogStore struct {
	db *gorm.DB
}

func NewGormLogStore(db *gorm.DB) *GormLogStore {
	return &GormLogStore{db: db}
}

func (s *GormLogStore) Append(ctx context.Context, userID uint, subject string) error {
	return s.db.WithContext(ctx).Create(&models.ProfileLog{
		User:    userID,
		Subject: subject,
	}).Error
}
