// internal/model/group.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Group is a small group or ministry team within a church.
type Group struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChurchID    uuid.UUID `gorm:"type:uuid;not null;index" json:"church_id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	LeaderID    *uuid.UUID `gorm:"type:uuid" json:"leader_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Members []GroupMember `gorm:"foreignKey:GroupID" json:"-"`
}

type GroupMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChurchID  uuid.UUID `gorm:"type:uuid;not null;index" json:"church_id"`
	GroupID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_group_members_once" json:"group_id"`
	MemberID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_group_members_once" json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
}
