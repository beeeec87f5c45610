package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"recharge-portal/internal/domain/plans"
)

func (s *GormStorage) ListPlans(ctx context.Context, filter PlanFilter) ([]plans.Plan, error) {
	q := s.conn(ctx).Model(&plans.Plan{})
	if filter.Type != nil {
		q = q.Where("plan_type = ?", *filter.Type)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	out := []plans.Plan{}
	if err := q.Order("amount_paise ASC, id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return out, nil
}

// GetPlan returns nil, nil when no plan has the id.
func (s *GormStorage) GetPlan(ctx context.Context, id uint) (*plans.Plan, error) {
	var p plans.Plan
	err := s.conn(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get plan %d: %w", id, err)
	}
	return &p, nil
}
