// internal/model/church.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionTier string

const (
	TierTrial    SubscriptionTier = "trial"
	TierStandard SubscriptionTier = "standard"
	TierPro      SubscriptionTier = "pro"
)

// Role within a church. Ordered by privilege; RoleGate treats owner and
// admin as equally privileged for administrative mutations.
type Role string

const (
	RoleOwner     Role = "owner"
	RoleAdmin     Role = "admin"
	RolePastor    Role = "pastor"
	RoleStaff     Role = "staff"
	RoleVolunteer Role = "volunteer"
	RoleMember    Role = "member"
)

// Church is the tenant isolation boundary. The slug is globally unique and
// permanent once assigned.
type Church struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string           `gorm:"type:text;not null" json:"name"`
	Slug           string           `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	Tier           SubscriptionTier `gorm:"type:text;not null;default:'trial'" json:"tier"`
	TrialExpiresAt *time.Time       `json:"trial_expires_at,omitempty"`
	MaxMembers     int              `gorm:"not null;default:200" json:"max_members"`
	MaxStorageMB   int              `gorm:"not null;default:1024" json:"max_storage_mb"`
	Settings       ChurchSettings   `gorm:"embedded;embeddedPrefix:settings_" json:"settings"`
	CreatedByID    uuid.UUID        `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	Memberships []Membership `gorm:"foreignKey:ChurchID" json:"-"`
}

type ChurchSettings struct {
	Timezone        string `gorm:"type:text;not null;default:'UTC'" json:"timezone"`
	PublicWebsite   bool   `gorm:"not null;default:false" json:"public_website"`
	DonationsModule bool   `gorm:"not null;default:true" json:"donations_module"`
	CheckInModule   bool   `gorm:"not null;default:true" json:"check_in_module"`
}

// Membership binds exactly one User to exactly one Church with a role.
// The unique index on user_id enforces the single-tenant-per-principal model.
type Membership struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChurchID  uuid.UUID `gorm:"type:uuid;not null;index" json:"church_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Role      Role      `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Church Church `gorm:"foreignKey:ChurchID" json:"-"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
}

// Invitation invites an email address into a church with a preset role.
type Invitation struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChurchID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"church_id"`
	Email     string     `gorm:"type:citext;not null" json:"email"`
	Role      Role       `gorm:"type:text;not null" json:"role"`
	Token     string     `gorm:"type:text;uniqueIndex;not null" json:"-"`
	InvitedBy uuid.UUID  `gorm:"type:uuid;not null" json:"invited_by"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
