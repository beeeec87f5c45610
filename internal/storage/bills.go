package storage

import (
	"context"
	"fmt"

	"recharge-portal/internal/contract"
	"recharge-portal/internal/domain/bills"
)

// GetMockBillAmountPaise never touches the database.
func (s *GormStorage) GetMockBillAmountPaise(_ context.Context, mobileNumber string) (int64, error) {
	return bills.MockAmountPaise(mobileNumber), nil
}

func (s *GormStorage) CreateBillPayment(ctx context.Context, userID *string, in contract.CreateBillPaymentInput, billAmountPaise int64, transactionID string) (*bills.BillPayment, error) {
	b := bills.BillPayment{
		TransactionID:   transactionID,
		UserID:          userID,
		MobileNumber:    in.MobileNumber,
		BillAmountPaise: billAmountPaise,
		CreatedAt:       s.now(),
	}
	if err := s.conn(ctx).Create(&b).Error; err != nil {
		return nil, fmt.Errorf("create bill payment: %w", err)
	}
	return &b, nil
}

func (s *GormStorage) ListMyBillPayments(ctx context.Context, userID string) ([]bills.BillPayment, error) {
	out := []bills.BillPayment{}
	err := s.conn(ctx).
		Where("user_id = ?", userID).
		Order(newestFirst).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list bill payments: %w", err)
	}
	return out, nil
}
