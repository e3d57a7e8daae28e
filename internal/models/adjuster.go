package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// License status lifecycle. Verification decisions happen out-of-band; this
// code only sets pending_verification on creation and verified on claim
// approval.
const (
	LicenseStatusPending  = "pending_verification"
	LicenseStatusVerified = "verified"
)

// Adjuster is a directory listing for an insurance claim adjuster.
// RatingAvg/RatingCount are denormalized and may lag the true values; the
// search path recomputes aggregates from raw review rows instead of
// trusting these columns.
type Adjuster struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName      string         `gorm:"size:100;not null" json:"first_name"`
	LastName       string         `gorm:"size:100;not null" json:"last_name"`
	State          string         `gorm:"size:2;not null;index" json:"state"`
	City           string         `gorm:"size:100;index" json:"city,omitempty"`
	Company        string         `gorm:"size:200;index" json:"company,omitempty"`
	Slug           string         `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	License        string         `gorm:"size:100" json:"license,omitempty"`
	LicenseStatus  string         `gorm:"size:50;not null;default:'pending_verification'" json:"license_status"`
	ProfileClaimed bool           `gorm:"default:false" json:"profile_claimed"`
	RatingAvg      float64        `gorm:"default:0" json:"rating_avg"`
	RatingCount    int            `gorm:"default:0" json:"rating_count"`
	Reviews        []Review       `gorm:"foreignKey:AdjusterID" json:"reviews,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
