package dto

type VerifyRecaptchaRequest struct {
	Token string `json:"token"`
}

type VerifyRecaptchaResponse struct {
	Success bool    `json:"success"`
	Score   float64 `json:"score,omitempty"`
	Action  string  `json:"action,omitempty"`
	Error   string  `json:"error,omitempty"`
}
