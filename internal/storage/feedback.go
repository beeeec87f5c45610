package storage

import (
	"context"
	"fmt"

	"recharge-portal/internal/contract"
	"recharge-portal/internal/domain/feedback"
)

func (s *GormStorage) CreateFeedback(ctx context.Context, userID *string, in contract.CreateFeedbackInput) (*feedback.Feedback, error) {
	f := feedback.Feedback{
		UserID:    userID,
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: s.now(),
	}
	if err := s.conn(ctx).Create(&f).Error; err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return &f, nil
}

// ListFeedback returns every entry, newest first.
func (s *GormStorage) ListFeedback(ctx context.Context) ([]feedback.Feedback, error) {
	out := []feedback.Feedback{}
	if err := s.conn(ctx).Order(newestFirst).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return out, nil
}
