// Package orders reads the order history backing the membership plans.
package orders

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Alexiva1995/Networkx-back/internal/models"
	"github.com/Alexiva1995/Networkx-back/internal/wallet"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Cyborg").
		Where("user_id = ?", userID).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Repository) Latest(ctx context.Context, quantity int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Cyborg").
		Order("id desc").
		Limit(quantity).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Repository) Paid(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Cyborg").
		Where("status = ?", models.OrderStatusApproved).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// LastApproved returns the user's approved order with the highest plan
// tier, or (nil, nil) when none exists.
func (r *Repository) LastApproved(ctx context.Context, userID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.OrderStatusApproved).
		Order("cyborg_id desc").
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// MonthlyAmounts feeds the order history into the shared monthly
// grouping used by the earnings charts.
func (r *Repository) MonthlyAmounts(ctx context.Context, userID uint) ([]wallet.MonthAmount, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	items := make([]wallet.MonthAmount, 0, len(orders))
	for _, o := range orders {
		items = append(items, wallet.MonthAmount{At: o.CreatedAt, Amount: o.Amount})
	}
	return items, nil
}
