package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/openadjusters/directory-backend/internal/dto"
)

// RecaptchaService forwards tokens to the external siteverify API. With no
// secret configured it FAILS OPEN: every token verifies successfully. That
// trades strictness for availability and is logged loudly, at construction
// and on every verification, so the policy is never silent.
type RecaptchaService struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}

func NewRecaptchaService(secret, verifyURL string) *RecaptchaService {
	if secret == "" {
		slog.Warn("RECAPTCHA_SECRET_KEY not set; recaptcha verification will fail open")
	}
	return &RecaptchaService{
		secret:     secret,
		verifyURL:  verifyURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *RecaptchaService) Verify(token string) (*dto.VerifyRecaptchaResponse, error) {
	if s.secret == "" {
		slog.Warn("recaptcha not configured; accepting token without verification")
		return &dto.VerifyRecaptchaResponse{Success: true}, nil
	}
	if token == "" {
		return &dto.VerifyRecaptchaResponse{Success: false, Error: "token is required"}, nil
	}

	resp, err := s.httpClient.PostForm(s.verifyURL, url.Values{
		"secret":   {s.secret},
		"response": {token},
	})
	if err != nil {
		return nil, fmt.Errorf("siteverify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("siteverify returned status %d", resp.StatusCode)
	}

	var sv siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&sv); err != nil {
		return nil, fmt.Errorf("failed to decode siteverify response: %w", err)
	}

	out := &dto.VerifyRecaptchaResponse{
		Success: sv.Success,
		Score:   sv.Score,
		Action:  sv.Action,
	}
	if !sv.Success && len(sv.ErrorCodes) > 0 {
		out.Error = sv.ErrorCodes[0]
	}
	return out, nil
}
