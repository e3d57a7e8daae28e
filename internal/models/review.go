package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Review moderation states. Transitions from pending are an external
// moderation decision; only approved reviews count toward public aggregates.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
	ReviewStatusFlagged  = "flagged"
)

// Review belongs to exactly one Adjuster. ScanIssues holds the non-blocking
// content-scan findings recorded at submission time.
type Review struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AdjusterID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"adjuster_id"`
	Rating        int            `gorm:"not null" json:"rating"`
	Title         string         `gorm:"size:200" json:"title,omitempty"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	ReviewerName  string         `gorm:"size:100" json:"reviewer_name,omitempty"`
	ReviewerEmail string         `gorm:"size:255" json:"-"`
	ClaimType     string         `gorm:"size:50" json:"claim_type,omitempty"`
	Status        string         `gorm:"size:20;not null;default:'pending';index" json:"status"`
	AdminNote     string         `gorm:"size:1000" json:"admin_note,omitempty"`
	ScanIssues    datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"scan_issues,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
