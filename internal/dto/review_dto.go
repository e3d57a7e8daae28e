package dto

import "github.com/openadjusters/directory-backend/internal/moderation"

type CreateReviewRequest struct {
	Rating        int    `json:"rating"`
	Title         string `json:"title,omitempty"`
	Content       string `json:"content"`
	ReviewerName  string `json:"reviewer_name,omitempty"`
	ReviewerEmail string `json:"reviewer_email,omitempty"`
	ClaimType     string `json:"claim_type,omitempty"`
}

// CreateReviewResponse carries the non-blocking scan findings back to the
// author so they can address them voluntarily.
type CreateReviewResponse struct {
	ID     string             `json:"id"`
	Status string             `json:"status"`
	Issues []moderation.Issue `json:"issues,omitempty"`
}

type ActionReviewRequest struct {
	Status    string `json:"status"`
	AdminNote string `json:"admin_note,omitempty"`
}

type ReportReviewRequest struct {
	Reason        string `json:"reason"`
	ReporterEmail string `json:"reporter_email,omitempty"`
}

type FairnessVoteRequest struct {
	Fair bool `json:"fair"`
}
