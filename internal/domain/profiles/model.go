package profiles

import "recharge-portal/internal/domain/users"

type CustomerProfile struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	UserID       string      `gorm:"column:user_id;type:varchar(255);not null;uniqueIndex" json:"userId"`
	User         *users.User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	MobileNumber string      `gorm:"column:mobile_number;type:varchar(10);not null;uniqueIndex" json:"mobileNumber"`
	FullName     *string     `gorm:"column:full_name" json:"fullName"`
	Address      *string     `json:"address"`
}

// TableName keeps the customer_ prefix used by the admin join.
func (CustomerProfile) TableName() string { return "customer_profiles" }
