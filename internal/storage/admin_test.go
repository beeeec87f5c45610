package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recharge-portal/internal/contract"
	"recharge-portal/internal/domain/plans"
	"recharge-portal/internal/domain/recharges"
)

func TestDayWindow(t *testing.T) {
	from, to, err := dayWindow("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 1, 1, 23, 59, 59, 999_000_000, time.UTC), to)

	for _, bad := range []string{"", "2024-1-1", "2024-02-30", "yesterday", "2024-01-01T00:00:00Z"} {
		_, _, err := dayWindow(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func seedDay(t *testing.T, s *GormStorage, clock *fixedClock) {
	t.Helper()
	ctx := context.Background()
	createUser(t, s, "u1", "")
	uid := "u1"

	topup := contract.CreateRechargeInput{MobileNumber: "9876543210", RechargeType: plans.TypeTopup, PlanID: 1}
	special := contract.CreateRechargeInput{MobileNumber: "9876543210", RechargeType: plans.TypeSpecial, PlanID: 4}

	// 2024-01-01 10:00, 10:05 and 23:59:59.5
	_, err := s.CreateRecharge(ctx, &uid, topup, 9900, recharges.NewTransactionID(recharges.PrefixRecharge))
	require.NoError(t, err)
	clock.advance(5 * time.Minute)
	_, err = s.CreateRecharge(ctx, nil, special, 23900, recharges.NewTransactionID(recharges.PrefixRecharge))
	require.NoError(t, err)
	clock.t = time.Date(2024, 1, 1, 23, 59, 59, 500_000_000, time.UTC)
	_, err = s.CreateBillPayment(ctx, &uid, contract.CreateBillPaymentInput{MobileNumber: "9876543210"}, 23110, recharges.NewTransactionID(recharges.PrefixBillPayment))
	require.NoError(t, err)

	// next day, outside the window
	clock.t = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	_, err = s.CreateRecharge(ctx, &uid, topup, 9900, recharges.NewTransactionID(recharges.PrefixRecharge))
	require.NoError(t, err)
}

func TestAdminDailyOverview(t *testing.T) {
	s, clock := setupStore(t)
	seedDay(t, s, clock)
	ctx := context.Background()

	ov, err := s.AdminDailyOverview(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", ov.Date)
	assert.Equal(t, int64(9900+23900), ov.TotalRechargeAmountPaise)
	assert.Equal(t, int64(23110), ov.TotalBillAmountPaise)
	assert.Equal(t, int64(3), ov.TotalTransactions)

	empty, err := s.AdminDailyOverview(ctx, "2023-12-31")
	require.NoError(t, err)
	assert.Zero(t, empty.TotalRechargeAmountPaise)
	assert.Zero(t, empty.TotalBillAmountPaise)
	assert.Zero(t, empty.TotalTransactions)

	_, err = s.AdminDailyOverview(ctx, "01-01-2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAdminDailyTransactions(t *testing.T) {
	s, clock := setupStore(t)
	seedDay(t, s, clock)
	ctx := context.Background()

	tx, err := s.AdminDailyTransactions(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, tx.Recharges, 2)
	require.Len(t, tx.BillPayments, 1)
	assert.Equal(t, int64(23900), tx.Recharges[0].AmountPaise)
	assert.Equal(t, int64(9900), tx.Recharges[1].AmountPaise)

	none, err := s.AdminDailyTransactions(ctx, "2030-06-15")
	require.NoError(t, err)
	assert.NotNil(t, none.Recharges)
	assert.NotNil(t, none.BillPayments)
	assert.Empty(t, none.Recharges)
}

func TestAdminUsers(t *testing.T) {
	s, clock := setupStore(t)
	ctx := context.Background()

	createUser(t, s, "u-first", "first@example.com")
	clock.advance(time.Minute)
	createUser(t, s, "u-second", "second@example.com")

	_, err := s.UpsertMyProfile(ctx, "u-second", ProfileUpdate{MobileNumber: strPtr("9876543210"), FullName: strPtr("Ravi")})
	require.NoError(t, err)

	rows, err := s.AdminUsers(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "u-first", rows[0].ID)
	assert.Nil(t, rows[0].MobileNumber)
	assert.Nil(t, rows[0].FullName)
	require.NotNil(t, rows[0].Email)
	assert.Equal(t, "first@example.com", *rows[0].Email)

	assert.Equal(t, "u-second", rows[1].ID)
	require.NotNil(t, rows[1].MobileNumber)
	assert.Equal(t, "9876543210", *rows[1].MobileNumber)
	assert.Equal(t, "Ravi", *rows[1].FullName)
}
