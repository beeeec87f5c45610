package auth

import (
	"context"

	"recharge-portal/internal/domain/users"
)

// AdminPolicy decides whether a signed-in user may call the admin operations.
type AdminPolicy interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// EmailLookup resolves the stored email of a user ("" when unknown).
type EmailLookup interface {
	UserEmail(ctx context.Context, userID string) (string, error)
}

// EmailAllowList admits exactly the user whose stored email equals Email,
// ignoring case. An empty Email admits nobody.
type EmailAllowList struct {
	Email string
	Users EmailLookup
}

func (p EmailAllowList) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if p.Email == "" || userID == "" || p.Users == nil {
		return false, nil
	}
	email, err := p.Users.UserEmail(ctx, userID)
	if err != nil {
		return false, err
	}
	return users.SameEmail(email, p.Email), nil
}
