// internal/model/event.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Event is a scheduled gathering with an allocated check-in code unique
// within the owning church.
type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChurchID    uuid.UUID `gorm:"type:uuid;not null;index:idx_events_church;uniqueIndex:idx_events_checkin" json:"church_id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"type:text" json:"location"`
	StartsAt    time.Time `gorm:"not null" json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CheckInCode string    `gorm:"type:text;not null;uniqueIndex:idx_events_checkin" json:"check_in_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Registration is an RSVP for an event.
type Registration struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChurchID  uuid.UUID `gorm:"type:uuid;not null;index" json:"church_id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	MemberID  uuid.UUID `gorm:"type:uuid;not null" json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Attendance records a check-in. One row per member, event, and service date;
// the composite unique index is what makes same-day re-check-in a conflict.
// SecurityCode is only set for child check-ins and is unique per event+date.
type Attendance struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChurchID     uuid.UUID `gorm:"type:uuid;not null;index" json:"church_id"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_once;uniqueIndex:idx_attendance_security_code" json:"event_id"`
	MemberID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_once" json:"member_id"`
	ServiceDate  time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_once;uniqueIndex:idx_attendance_security_code" json:"service_date"`
	SecurityCode string    `gorm:"type:text;uniqueIndex:idx_attendance_security_code,where:security_code <> ''" json:"security_code,omitempty"`
	CheckedInBy  uuid.UUID `gorm:"type:uuid" json:"checked_in_by"`
	CreatedAt    time.Time `json:"created_at"`
}
