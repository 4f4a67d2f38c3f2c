// internal/model/page.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// WebPage is a CMS page. Slug is unique within the owning church.
type WebPage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChurchID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pages_slug" json:"church_id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Slug      string    `gorm:"type:text;not null;uniqueIndex:idx_pages_slug" json:"slug"`
	Body      string    `gorm:"type:text" json:"body"`
	Published bool      `gorm:"not null;default:false" json:"published"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
