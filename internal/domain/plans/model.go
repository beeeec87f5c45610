package plans

type Plan struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	PlanType      string  `gorm:"column:plan_type;type:varchar(20);not null;index:idx_plans_type_active,priority:1" json:"planType"`
	Name          string  `gorm:"not null" json:"name"`
	Description   *string `json:"description"`
	AmountPaise   int64   `gorm:"column:amount_paise;not null" json:"amountPaise"`
	ValidityDays  *int    `gorm:"column:validity_days" json:"validityDays"`
	TalktimePaise *int64  `gorm:"column:talktime_paise" json:"talktimePaise"`
	IsActive      bool    `gorm:"column:is_active;not null;index:idx_plans_type_active,priority:2" json:"isActive"`
}
