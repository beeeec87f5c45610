package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"recharge-portal/internal/contract"
	"recharge-portal/internal/domain/bills"
	"recharge-portal/internal/domain/feedback"
	"recharge-portal/internal/domain/plans"
	"recharge-portal/internal/domain/profiles"
	"recharge-portal/internal/domain/recharges"
	"recharge-portal/internal/domain/services"
	"recharge-portal/internal/domain/users"
)

var (
	// ErrInvalidDate is returned by the admin reports for a date that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrProfileMobileRequired is returned when a first profile save carries no mobile number.
	ErrProfileMobileRequired = errors.New("mobile number is required to create a profile")
)

// PlanFilter narrows ListPlans. A nil Type matches both plan types.
type PlanFilter struct {
	Type       *string
	ActiveOnly bool
}

// ProfileUpdate carries the fields to change; nil means unchanged.
type ProfileUpdate struct {
	MobileNumber *string
	FullName     *string
	Address      *string
}

// ServicesUpdate carries the toggles to change; nil means unchanged.
type ServicesUpdate struct {
	DoNotDisturb *bool
	CallerTunes  *bool
}

// DailyOverview is the admin summary of one UTC calendar day.
type DailyOverview struct {
	Date                     string
	TotalRechargeAmountPaise int64
	TotalBillAmountPaise     int64
	TotalTransactions        int64
}

type DailyTransactions struct {
	Recharges    []recharges.Recharge
	BillPayments []bills.BillPayment
}

// AdminUserRow is a user joined with its profile, if any.
type AdminUserRow struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	MobileNumber    *string
	FullName        *string
}

// Storage is every read and write the portal performs.
type Storage interface {
	ListPlans(ctx context.Context, filter PlanFilter) ([]plans.Plan, error)
	GetPlan(ctx context.Context, id uint) (*plans.Plan, error)

	CreateRecharge(ctx context.Context, userID *string, in contract.CreateRechargeInput, amountPaise int64, transactionID string) (*recharges.Recharge, error)
	ListMyRecharges(ctx context.Context, userID string) ([]recharges.Recharge, error)

	GetMockBillAmountPaise(ctx context.Context, mobileNumber string) (int64, error)
	CreateBillPayment(ctx context.Context, userID *string, in contract.CreateBillPaymentInput, billAmountPaise int64, transactionID string) (*bills.BillPayment, error)
	ListMyBillPayments(ctx context.Context, userID string) ([]bills.BillPayment, error)

	GetMyProfile(ctx context.Context, userID string) (*profiles.CustomerProfile, error)
	UpsertMyProfile(ctx context.Context, userID string, update ProfileUpdate) (*profiles.CustomerProfile, error)

	GetMyServices(ctx context.Context, userID string) (*services.Services, error)
	UpdateMyServices(ctx context.Context, userID string, update ServicesUpdate) (*services.Services, error)

	CreateFeedback(ctx context.Context, userID *string, in contract.CreateFeedbackInput) (*feedback.Feedback, error)
	ListFeedback(ctx context.Context) ([]feedback.Feedback, error)

	GetUser(ctx context.Context, id string) (*users.User, error)
	UserEmail(ctx context.Context, userID string) (string, error)
	UpsertUser(ctx context.Context, u users.User) (*users.User, error)

	AdminDailyOverview(ctx context.Context, dateISO string) (*DailyOverview, error)
	AdminDailyTransactions(ctx context.Context, dateISO string) (*DailyTransactions, error)
	AdminUsers(ctx context.Context) ([]AdminUserRow, error)

	SeedIfEmpty(ctx context.Context) (bool, error)
}

// GormStorage implements Storage on gorm.
type GormStorage struct {
	db  *gorm.DB
	now func() time.Time
}

var _ Storage = (*GormStorage)(nil)

func New(db *gorm.DB) *GormStorage {
	return &GormStorage{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the clock used for createdAt stamps.
func (s *GormStorage) WithClock(now func() time.Time) *GormStorage {
	s.now = func() time.Time { return now().UTC() }
	return s
}

func (s *GormStorage) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// newestFirst orders immutable logs; id breaks ties within one timestamp.
const newestFirst = "created_at DESC, id DESC"
