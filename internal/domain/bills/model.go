package bills

import (
	"time"

	"recharge-portal/internal/domain/users"
)

type BillPayment struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	TransactionID   string      `gorm:"column:transaction_id;type:varchar(32);not null;uniqueIndex" json:"transactionId"`
	UserID          *string     `gorm:"column:user_id;type:varchar(255);index:idx_bill_payments_user_created_at,priority:1" json:"userId"`
	User            *users.User `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	MobileNumber    string      `gorm:"column:mobile_number;type:varchar(10);not null;index:idx_bill_payments_mobile_created_at,priority:1" json:"mobileNumber"`
	BillAmountPaise int64       `gorm:"column:bill_amount_paise;not null" json:"billAmountPaise"`
	CreatedAt       time.Time   `gorm:"not null;index:idx_bill_payments_user_created_at,priority:2;index:idx_bill_payments_mobile_created_at,priority:2" json:"createdAt"`
}
