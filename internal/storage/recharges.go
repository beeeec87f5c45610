package storage

import (
	"context"
	"fmt"

	"recharge-portal/internal/contract"
	"recharge-portal/internal/domain/recharges"
)

// CreateRecharge persists a recharge. The caller has already checked the plan and
// priced it; amountPaise is stored as given.
func (s *GormStorage) CreateRecharge(ctx context.Context, userID *string, in contract.CreateRechargeInput, amountPaise int64, transactionID string) (*recharges.Recharge, error) {
	planID := uint(in.PlanID)
	r := recharges.Recharge{
		TransactionID: transactionID,
		UserID:        userID,
		MobileNumber:  in.MobileNumber,
		RechargeType:  in.RechargeType,
		PlanID:        &planID,
		AmountPaise:   amountPaise,
		CreatedAt:     s.now(),
	}
	if err := s.conn(ctx).Create(&r).Error; err != nil {
		return nil, fmt.Errorf("create recharge: %w", err)
	}
	return &r, nil
}

func (s *GormStorage) ListMyRecharges(ctx context.Context, userID string) ([]recharges.Recharge, error) {
	out := []recharges.Recharge{}
	err := s.conn(ctx).
		Where("user_id = ?", userID).
		Order(newestFirst).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list recharges: %w", err)
	}
	return out, nil
}
