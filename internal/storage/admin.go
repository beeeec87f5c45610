package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"

	"recharge-portal/internal/domain/bills"
	"recharge-portal/internal/domain/recharges"
)

const dateLayout = "2006-01-02"

// dayWindow is [00:00:00.000, 23:59:59.999] UTC of dateISO.
func dayWindow(dateISO string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, dateISO, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateISO)
	}
	return day, day.Add(24*time.Hour - time.Millisecond), nil
}

func createdBetween(db *gorm.DB, model any, from, to time.Time) *gorm.DB {
	return db.Model(model).Where("created_at >= ? AND created_at <= ?", from, to)
}

// snapshot makes the report reads see one consistent state where the driver allows it.
func (s *GormStorage) snapshot() []*sql.TxOptions {
	if s.db.Dialector.Name() != "postgres" {
		return nil
	}
	return []*sql.TxOptions{{Isolation: sql.LevelRepeatableRead, ReadOnly: true}}
}

func (s *GormStorage) AdminDailyOverview(ctx context.Context, dateISO string) (*DailyOverview, error) {
	from, to, err := dayWindow(dateISO)
	if err != nil {
		return nil, err
	}

	out := DailyOverview{Date: dateISO}
	err = s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createdBetween(tx, &recharges.Recharge{}, from, to).
			Select("COALESCE(SUM(amount_paise), 0)").
			Scan(&out.TotalRechargeAmountPaise).Error; err != nil {
			return err
		}
		if err := createdBetween(tx, &bills.BillPayment{}, from, to).
			Select("COALESCE(SUM(bill_amount_paise), 0)").
			Scan(&out.TotalBillAmountPaise).Error; err != nil {
			return err
		}

		var rechargeCount, billCount int64
		if err := createdBetween(tx, &recharges.Recharge{}, from, to).Count(&rechargeCount).Error; err != nil {
			return err
		}
		if err := createdBetween(tx, &bills.BillPayment{}, from, to).Count(&billCount).Error; err != nil {
			return err
		}
		out.TotalTransactions = rechargeCount + billCount
		return nil
	}, s.snapshot()...)
	if err != nil {
		return nil, fmt.Errorf("admin overview: %w", err)
	}
	return &out, nil
}

func (s *GormStorage) AdminDailyTransactions(ctx context.Context, dateISO string) (*DailyTransactions, error) {
	from, to, err := dayWindow(dateISO)
	if err != nil {
		return nil, err
	}

	out := DailyTransactions{
		Recharges:    []recharges.Recharge{},
		BillPayments: []bills.BillPayment{},
	}
	err = s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createdBetween(tx, &recharges.Recharge{}, from, to).Order(newestFirst).Find(&out.Recharges).Error; err != nil {
			return err
		}
		return createdBetween(tx, &bills.BillPayment{}, from, to).Order(newestFirst).Find(&out.BillPayments).Error
	}, s.snapshot()...)
	if err != nil {
		return nil, fmt.Errorf("admin transactions: %w", err)
	}
	return &out, nil
}

// AdminUsers lists every user in sign-up order with the profile columns, which are
// nil for users who never saved a profile.
func (s *GormStorage) AdminUsers(ctx context.Context) ([]AdminUserRow, error) {
	rows := []AdminUserRow{}
	err := s.conn(ctx).
		Table("users").
		Select(`users.id, users.email, users.first_name, users.last_name, users.profile_image_url,
			customer_profiles.mobile_number, customer_profiles.full_name`).
		Joins("LEFT JOIN customer_profiles ON customer_profiles.user_id = users.id").
		Order("users.created_at ASC, users.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("admin users: %w", err)
	}
	return rows, nil
}
