package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"recharge-portal/internal/domain/services"
)

// GetMyServices returns the user's toggles, inserting the defaults on first access.
func (s *GormStorage) GetMyServices(ctx context.Context, userID string) (*services.Services, error) {
	svc, err := getOrCreateServices(s.conn(ctx), userID)
	if err != nil {
		return nil, fmt.Errorf("get services: %w", err)
	}
	return svc, nil
}

func (s *GormStorage) UpdateMyServices(ctx context.Context, userID string, update ServicesUpdate) (*services.Services, error) {
	var out *services.Services
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		svc, err := getOrCreateServices(tx, userID)
		if err != nil {
			return err
		}

		changes := map[string]any{}
		if update.DoNotDisturb != nil {
			changes["do_not_disturb"] = *update.DoNotDisturb
		}
		if update.CallerTunes != nil {
			changes["caller_tunes"] = *update.CallerTunes
		}
		if len(changes) > 0 {
			if err := tx.Model(svc).Updates(changes).Error; err != nil {
				return err
			}
			if err := tx.First(svc, svc.ID).Error; err != nil {
				return err
			}
		}
		out = svc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update services: %w", err)
	}
	return out, nil
}

func getOrCreateServices(db *gorm.DB, userID string) (*services.Services, error) {
	var svc services.Services
	err := db.Where("user_id = ?", userID).First(&svc).Error
	if err == nil {
		return &svc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	svc = services.Defaults(userID)
	if err := db.Create(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}
