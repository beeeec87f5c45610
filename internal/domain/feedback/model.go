package feedback

import (
	"time"

	"recharge-portal/internal/domain/users"
)

type Feedback struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    *string     `gorm:"column:user_id;type:varchar(255)" json:"userId"`
	User      *users.User `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	Name      *string     `json:"name"`
	Email     *string     `gorm:"type:varchar(320)" json:"email"`
	Message   string      `gorm:"not null" json:"message"`
	CreatedAt time.Time   `gorm:"not null;index" json:"createdAt"`
}

func (Feedback) TableName() string { return "feedback" }
