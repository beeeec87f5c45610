package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"recharge-portal/internal/domain/plans"
)

// SeedIfEmpty inserts the plan catalog when the plans table has no rows.
// It reports whether anything was inserted.
func (s *GormStorage) SeedIfEmpty(ctx context.Context) (bool, error) {
	seeded := false
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&plans.Plan{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		catalog := plans.Catalog()
		if err := tx.Create(&catalog).Error; err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed plans: %w", err)
	}
	return seeded, nil
}
