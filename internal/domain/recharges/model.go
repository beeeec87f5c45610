package recharges

import (
	"time"

	"recharge-portal/internal/domain/plans"
	"recharge-portal/internal/domain/users"
)

type Recharge struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	TransactionID string      `gorm:"column:transaction_id;type:varchar(32);not null;uniqueIndex" json:"transactionId"`
	UserID        *string     `gorm:"column:user_id;type:varchar(255);index:idx_recharges_user_created_at,priority:1" json:"userId"`
	User          *users.User `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	MobileNumber  string      `gorm:"column:mobile_number;type:varchar(10);not null;index:idx_recharges_mobile_created_at,priority:1" json:"mobileNumber"`
	RechargeType  string      `gorm:"column:recharge_type;type:varchar(20);not null" json:"rechargeType"`
	PlanID        *uint       `gorm:"column:plan_id" json:"planId"`
	Plan          *plans.Plan `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	AmountPaise   int64       `gorm:"column:amount_paise;not null" json:"amountPaise"`
	CreatedAt     time.Time   `gorm:"not null;index:idx_recharges_user_created_at,priority:2;index:idx_recharges_mobile_created_at,priority:2" json:"createdAt"`
}
