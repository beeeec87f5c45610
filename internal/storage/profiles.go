package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"recharge-portal/internal/domain/profiles"
)

// GetMyProfile returns nil, nil until the user has saved a profile.
func (s *GormStorage) GetMyProfile(ctx context.Context, userID string) (*profiles.CustomerProfile, error) {
	p, err := findProfile(s.conn(ctx), userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// UpsertMyProfile creates the profile on first save and otherwise changes only the
// supplied fields. The first save must carry a mobile number.
func (s *GormStorage) UpsertMyProfile(ctx context.Context, userID string, update ProfileUpdate) (*profiles.CustomerProfile, error) {
	var out *profiles.CustomerProfile
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findProfile(tx, userID)
		if err != nil {
			return err
		}

		if existing == nil {
			if update.MobileNumber == nil {
				return ErrProfileMobileRequired
			}
			p := profiles.CustomerProfile{
				UserID:       userID,
				MobileNumber: *update.MobileNumber,
				FullName:     update.FullName,
				Address:      update.Address,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			out = &p
			return nil
		}

		changes := map[string]any{}
		if update.MobileNumber != nil {
			changes["mobile_number"] = *update.MobileNumber
		}
		if update.FullName != nil {
			changes["full_name"] = *update.FullName
		}
		if update.Address != nil {
			changes["address"] = *update.Address
		}
		if len(changes) > 0 {
			if err := tx.Model(existing).Updates(changes).Error; err != nil {
				return err
			}
			if err := tx.First(existing, existing.ID).Error; err != nil {
				return err
			}
		}
		out = existing
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrProfileMobileRequired) {
			return nil, err
		}
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return out, nil
}

func findProfile(db *gorm.DB, userID string) (*profiles.CustomerProfile, error) {
	var p profiles.CustomerProfile
	err := db.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
