package database

import (
	"fmt"
	"log/slog"

	"recharge-portal/internal/domain/bills"
	"recharge-portal/internal/domain/feedback"
	"recharge-portal/internal/domain/plans"
	"recharge-portal/internal/domain/profiles"
	"recharge-portal/internal/domain/recharges"
	"recharge-portal/internal/domain/services"
	"recharge-portal/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to postgres at dsn.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Models lists every table, referenced tables first.
func Models() []any {
	return []any{
		// identity
		&users.User{},

		// catalog
		&plans.Plan{},

		// transactions
		&recharges.Recharge{},
		&bills.BillPayment{},

		// account
		&profiles.CustomerProfile{},
		&services.Services{},
		&feedback.Feedback{},
	}
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	slog.Info("database migrated", "tables", len(Models()))
	return nil
}

// InitDB opens and migrates in one step.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
