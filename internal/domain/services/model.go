package services

import "recharge-portal/internal/domain/users"

// Services holds a user's value-added service toggles.
type Services struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	UserID       string      `gorm:"column:user_id;type:varchar(255);not null;uniqueIndex" json:"userId"`
	User         *users.User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	DoNotDisturb bool        `gorm:"column:do_not_disturb;not null" json:"doNotDisturb"`
	CallerTunes  bool        `gorm:"column:caller_tunes;not null" json:"callerTunes"`
}

func (Services) TableName() string { return "services" }

// Defaults is the row inserted on first access.
func Defaults(userID string) Services {
	return Services{UserID: userID, DoNotDisturb: false, CallerTunes: false}
}
