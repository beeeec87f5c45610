package contract

import (
	"bytes"
	"encoding/json"
	"time"
)

// Plan is a catalog entry as returned by plans.list.
type Plan struct {
	ID            int64   `json:"id" validate:"gt=0"`
	PlanType      string  `json:"planType" validate:"oneof=topup special"`
	Name          string  `json:"name" validate:"required"`
	Description   *string `json:"description"`
	AmountPaise   int64   `json:"amountPaise" validate:"gte=0"`
	ValidityDays  *int    `json:"validityDays" validate:"omitempty,gt=0"`
	TalktimePaise *int64  `json:"talktimePaise" validate:"omitempty,gte=0"`
	IsActive      bool    `json:"isActive"`
}

type Recharge struct {
	ID            int64     `json:"id" validate:"gt=0"`
	TransactionID string    `json:"transactionId" validate:"required,max=32"`
	UserID        *string   `json:"userId"`
	MobileNumber  string    `json:"mobileNumber" validate:"mobile"`
	RechargeType  string    `json:"rechargeType" validate:"oneof=topup special"`
	PlanID        *int64    `json:"planId"`
	AmountPaise   int64     `json:"amountPaise" validate:"gte=0"`
	CreatedAt     time.Time `json:"createdAt" validate:"required"`
}

type BillPayment struct {
	ID              int64     `json:"id" validate:"gt=0"`
	TransactionID   string    `json:"transactionId" validate:"required,max=32"`
	UserID          *string   `json:"userId"`
	MobileNumber    string    `json:"mobileNumber" validate:"mobile"`
	BillAmountPaise int64     `json:"billAmountPaise" validate:"gte=0"`
	CreatedAt       time.Time `json:"createdAt" validate:"required"`
}

type MockBill struct {
	MobileNumber    string `json:"mobileNumber" validate:"required"`
	BillAmountPaise int64  `json:"billAmountPaise" validate:"gte=0"`
}

type Profile struct {
	ID           int64   `json:"id" validate:"gt=0"`
	UserID       string  `json:"userId" validate:"required"`
	MobileNumber string  `json:"mobileNumber" validate:"mobile"`
	FullName     *string `json:"fullName"`
	Address      *string `json:"address"`
}

type Services struct {
	ID           int64  `json:"id" validate:"gt=0"`
	UserID       string `json:"userId" validate:"required"`
	DoNotDisturb bool   `json:"doNotDisturb"`
	CallerTunes  bool   `json:"callerTunes"`
}

type Feedback struct {
	ID        int64     `json:"id" validate:"gt=0"`
	UserID    *string   `json:"userId"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email" validate:"omitempty,max=320"`
	Message   string    `json:"message" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

type AdminOverview struct {
	Date                     string `json:"date" validate:"required"`
	TotalRechargeAmountPaise int64  `json:"totalRechargeAmountPaise" validate:"gte=0"`
	TotalBillAmountPaise     int64  `json:"totalBillAmountPaise" validate:"gte=0"`
	TotalTransactions        int64  `json:"totalTransactions" validate:"gte=0"`
}

type AdminTransactions struct {
	Recharges    []Recharge    `json:"recharges" validate:"required,dive"`
	BillPayments []BillPayment `json:"billPayments" validate:"required,dive"`
}

// AdminUser is an identity row joined with its (optional) profile.
type AdminUser struct {
	ID              string  `json:"id" validate:"required"`
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
	MobileNumber    *string `json:"mobileNumber"`
	FullName        *string `json:"fullName"`
}

// ErrorBody is the body of every 4xx/5xx response.
type ErrorBody struct {
	Message string `json:"message" validate:"required"`
	Field   string `json:"field,omitempty"`
}

// AuthUser is the signed-in identity returned by GET /api/auth/user.
type AuthUser struct {
	ID              string  `json:"id"`
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
	IsAdmin         bool    `json:"isAdmin"`
}

// ResponseValidator checks a raw response body.
type ResponseValidator func(raw []byte) error

func expect[T any]() ResponseValidator {
	return func(raw []byte) error {
		var v T
		return Parse(raw, &v)
	}
}

func expectList[T any]() ResponseValidator {
	return func(raw []byte) error {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '[' {
			return &FieldError{Message: "Expected array"}
		}
		var items []T
		if err := Decode(trimmed, &items); err != nil {
			return err
		}
		for i := range items {
			if err := Validate(&items[i]); err != nil {
				return err
			}
		}
		return nil
	}
}

func expectNullable[T any]() ResponseValidator {
	inner := expect[T]()
	return func(raw []byte) error {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil
		}
		return inner(raw)
	}
}

// DecodeResponse unmarshals a body already accepted by its validator.
func DecodeResponse(raw []byte, dst any) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
