// internal/model/donation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Fund is a donation bucket ("General", "Missions", ...). TotalCents is
// maintained in the same transaction that inserts each donation.
type Fund struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChurchID    uuid.UUID `gorm:"type:uuid;not null;index" json:"church_id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	TotalCents  int64     `gorm:"not null;default:0" json:"total_cents"`
	IsDefault   bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DonationMethod string

const (
	MethodCash   DonationMethod = "cash"
	MethodCheck  DonationMethod = "check"
	MethodCard   DonationMethod = "card"
	MethodOnline DonationMethod = "online"
)

type Donation struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChurchID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"church_id"`
	FundID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"fund_id"`
	MemberID    *uuid.UUID     `gorm:"type:uuid" json:"member_id,omitempty"`
	AmountCents int64          `gorm:"not null" json:"amount_cents"`
	Method      DonationMethod `gorm:"type:text;not null;default:'cash'" json:"method"`
	Note        string         `gorm:"type:text" json:"note"`
	GivenAt     time.Time      `gorm:"not null" json:"given_at"`
	CreatedAt   time.Time      `json:"created_at"`
}
