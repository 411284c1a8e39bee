// Package worker runs the background security-code expiry sweep.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Alexiva1995/Networkx-back/internal/models"
	"github.com/Alexiva1995/Networkx-back/internal/profile"
)

// Sweeper clears expired security codes so a stale hash can never be
// verified, even if the user never attempts the check endpoint.
type Sweeper struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewSweeper(db *gorm.DB, rdb *redis.Client) *Sweeper {
	return &Sweeper{DB: db, Redis: rdb}
}

// Start runs one sweep immediately and then hourly until ctx is done.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()
	slog.Info("Security-code sweeper started")

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Security-code sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-profile.CodeTTL)

	var stale []models.User
	err := s.DB.WithContext(ctx).
		Where("code_security IS NOT NULL AND code_verified_at < ?", cutoff).
		Find(&stale).Error
	if err != nil {
		slog.Error("Error querying stale security codes", "error", err)
		return
	}

	for _, user := range stale {
		// Guard key so concurrent instances don't race on the same row.
		key := fmt.Sprintf("code_swept_%d", user.ID)
		claimed, err := s.Redis.SetNX(ctx, key, "1", 2*time.Hour).Result()
		if err != nil {
			slog.Error("Redis error during sweep", "error", err)
			continue
		}
		if !claimed {
			continue
		}

		err = s.DB.WithContext(ctx).
			Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("code_security", nil).Error
		if err != nil {
			slog.Error("Failed to clear expired security code", "user", user.ID, "error", err)
			continue
		}
		slog.Info("Cleared expired security code", "user", user.ID)
	}
}
