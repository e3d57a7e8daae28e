package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ClaimStatusPending  = "pending"
	ClaimStatusApproved = "approved"
	ClaimStatusDenied   = "denied"
)

// ClaimRequest is a request by an adjuster to take ownership of their
// listing. Adjuster name/state are denormalized so the moderation queue
// renders without a join. Terminal states are applied through the admin
// endpoints.
type ClaimRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AdjusterID    uuid.UUID `gorm:"type:uuid;not null;index" json:"adjuster_id"`
	AdjusterName  string    `gorm:"size:200" json:"adjuster_name"`
	AdjusterState string    `gorm:"size:2" json:"adjuster_state"`
	Email         string    `gorm:"size:255;not null" json:"email"`
	Phone         string    `gorm:"size:50" json:"phone,omitempty"`
	Message       string    `gorm:"type:text" json:"message,omitempty"`
	Status        string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	AdminNote     string    `gorm:"size:1000" json:"admin_note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
