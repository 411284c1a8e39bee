package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Alexiva1995/Networkx-back/internal/config"
	"github.com/Alexiva1995/Networkx-back/internal/models"
)

func ConnectPostgres(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("Connected to PostgreSQL", "host", cfg.DBHost, "db", cfg.DBName)

	err = db.AutoMigrate(
		&models.User{},
		&models.Prefix{},
		&models.WalletComission{},
		&models.Order{},
		&models.Cyborg{},
		&models.Liquidaction{},
		&models.ProfileLog{},
		&models.ReferalLink{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
