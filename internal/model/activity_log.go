// internal/model/activity_log.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ActionKind string

const (
	ActionCreate ActionKind = "create"
	ActionUpdate ActionKind = "update"
	ActionDelete ActionKind = "delete"
	ActionSend   ActionKind = "send"
)

// Details is a free-form JSONB payload attached to an activity entry.
type Details map[string]any

// Scan implements the sql.Scanner interface
func (d *Details) Scan(value interface{}) error {
	if value == nil {
		*d = Details{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, d)
	}
	return json.Unmarshal(raw, d)
}

// Value implements the driver.Valuer interface
func (d Details) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// ActivityLogEntry is an append-only audit record. The application never
// updates or deletes rows in this table.
type ActivityLogEntry struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChurchID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"church_id"`
	ActorID    uuid.UUID  `gorm:"type:uuid;not null" json:"actor_id"`
	Action     ActionKind `gorm:"type:text;not null" json:"action"`
	TargetType string     `gorm:"type:text;not null" json:"target_type"`
	TargetID   uuid.UUID  `gorm:"type:uuid;not null" json:"target_id"`
	Detail     Details    `gorm:"type:jsonb;not null;default:'{}'" json:"detail"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
