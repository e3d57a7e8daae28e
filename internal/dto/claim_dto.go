package dto

type ClaimNotificationRequest struct {
	AdjusterID    string `json:"adjusterId"`
	AdjusterName  string `json:"adjusterName"`
	AdjusterState string `json:"adjusterState"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Message       string `json:"message,omitempty"`
}

type ClaimNotificationResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ActionClaimRequest struct {
	Status    string `json:"status"`
	AdminNote string `json:"admin_note,omitempty"`
}

type DisputeRequest struct {
	Reason       string `json:"reason"`
	Details      string `json:"details,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
}

type ConfirmationRequest struct {
	ClaimYear int    `json:"claim_year,omitempty"`
	Comment   string `json:"comment,omitempty"`
}
