// internal/model/member.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Member is a directory entry for a congregation member. Distinct from User:
// most members never log in.
type Member struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChurchID  uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_members_email" json:"church_id"`
	FirstName string     `gorm:"type:text;not null" json:"first_name"`
	LastName  string     `gorm:"type:text" json:"last_name"`
	Email     string     `gorm:"type:citext;uniqueIndex:idx_members_email,where:email IS NOT NULL AND email <> ''" json:"email"`
	Phone     string     `gorm:"type:text" json:"phone"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	IsChild   bool       `gorm:"not null;default:false" json:"is_child"`
	Notes     string     `gorm:"type:text" json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
