package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recharge-portal/internal/domain/users"
)

// GetUser returns nil, nil for an unknown id.
func (s *GormStorage) GetUser(ctx context.Context, id string) (*users.User, error) {
	var u users.User
	err := s.conn(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// UserEmail returns "" when the user is unknown or has no email.
func (s *GormStorage) UserEmail(ctx context.Context, userID string) (string, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil || u == nil || u.Email == nil {
		return "", err
	}
	return *u.Email, nil
}

// UpsertUser records the claims of a login. Existing rows keep their createdAt.
func (s *GormStorage) UpsertUser(ctx context.Context, u users.User) (*users.User, error) {
	now := s.now()
	u.CreatedAt = now
	u.UpdatedAt = now

	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "profile_image_url", "updated_at"}),
	}).Create(&u).Error
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return s.GetUser(ctx, u.ID)
}
