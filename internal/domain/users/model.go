package users

import (
	"strings"
	"time"
)

// User is the identity supplied by the OIDC provider.
// ID is the provider's stable subject identifier.
type User struct {
	ID              string  `gorm:"primaryKey;type:varchar(255)" json:"id"`
	Email           *string `gorm:"uniqueIndex:idx_users_email" json:"email"`
	FirstName       *string `gorm:"column:first_name" json:"firstName"`
	LastName        *string `gorm:"column:last_name" json:"lastName"`
	ProfileImageURL *string `gorm:"column:profile_image_url" json:"profileImageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SameEmail compares two addresses case-insensitively, ignoring surrounding space.
// Empty addresses never match.
func SameEmail(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}
