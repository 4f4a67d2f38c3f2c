// internal/model/notification.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChurchID  uuid.UUID `gorm:"type:uuid;not null;index" json:"church_id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	SentBy    uuid.UUID `gorm:"type:uuid;not null" json:"sent_by"`
	CreatedAt time.Time `json:"created_at"`
}
