package models

import (
	"time"

	"github.com/google/uuid"
)

// Append-only fact tables. None of these have a lifecycle beyond creation;
// ReviewReport and ProfileDispute carry a status column so the admin queue
// can mark them handled.

// ReviewReport flags a review as problematic (fake, abusive, wrong person).
type ReviewReport struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReviewID      uuid.UUID `gorm:"type:uuid;not null;index" json:"review_id"`
	Reason        string    `gorm:"size:500;not null" json:"reason"`
	ReporterEmail string    `gorm:"size:255" json:"-"`
	Status        string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProfileDispute is a complaint about listing accuracy.
type ProfileDispute struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AdjusterID    uuid.UUID `gorm:"type:uuid;not null;index" json:"adjuster_id"`
	Reason        string    `gorm:"size:500;not null" json:"reason"`
	Details       string    `gorm:"type:text" json:"details,omitempty"`
	ContactEmail  string    `gorm:"size:255" json:"-"`
	Status        string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// FairnessVote records a was-this-review-fair vote.
type FairnessVote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReviewID  uuid.UUID `gorm:"type:uuid;not null;index" json:"review_id"`
	Fair      bool      `gorm:"not null" json:"fair"`
	VoterHash string    `gorm:"size:64;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// AdjusterConfirmation records a "I worked with this adjuster" confirmation.
type AdjusterConfirmation struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AdjusterID uuid.UUID `gorm:"type:uuid;not null;index" json:"adjuster_id"`
	ClaimYear  int       `json:"claim_year,omitempty"`
	Comment    string    `gorm:"size:500" json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
