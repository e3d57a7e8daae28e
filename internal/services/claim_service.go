package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/openadjusters/directory-backend/internal/dto"
	"github.com/openadjusters/directory-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrClaimNotFound     = errors.New("claim request not found")
	ErrEmailRequired     = errors.New("email is required")
	ErrInvalidAdjusterID = errors.New("adjusterId is required and must be a valid id")
)

// ClaimService handles profile-claim requests plus the smaller intake
// endpoints (disputes, confirmations). Everything here is presence
// validation and an insert; the decision workflows are external.
type ClaimService struct {
	db *gorm.DB
}

func NewClaimService(db *gorm.DB) *ClaimService {
	return &ClaimService{db: db}
}

func (s *ClaimService) CreateClaimRequest(req *dto.ClaimNotificationRequest) (*models.ClaimRequest, error) {
	adjusterID, err := uuid.Parse(req.AdjusterID)
	if err != nil {
		return nil, ErrInvalidAdjusterID
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, ErrEmailRequired
	}

	// Canonical name/state come from the listing; the submitted copies are
	// only a fallback for listings the caller saw before an edit.
	var adjuster models.Adjuster
	if err := s.db.Where("id = ?", adjusterID).First(&adjuster).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdjusterNotFound
		}
		return nil, err
	}

	name := adjuster.FirstName + " " + adjuster.LastName
	state := adjuster.State
	if strings.TrimSpace(name) == "" {
		name = req.AdjusterName
	}
	if state == "" {
		state = req.AdjusterState
	}

	claim := &models.ClaimRequest{
		ID:            uuid.New(),
		AdjusterID:    adjusterID,
		AdjusterName:  name,
		AdjusterState: state,
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Message:       strings.TrimSpace(req.Message),
		Status:        models.ClaimStatusPending,
	}
	if err := s.db.Create(claim).Error; err != nil {
		return nil, fmt.Errorf("failed to create claim request: %w", err)
	}
	return claim, nil
}

func (s *ClaimService) ListClaims(status string, limit, offset int) ([]models.ClaimRequest, int64, error) {
	var claims []models.ClaimRequest
	var total int64

	query := s.db.Model(&models.ClaimRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&claims).Error; err != nil {
		return nil, 0, err
	}
	return claims, total, nil
}

// ActionClaim applies an out-of-band claim decision. Approval marks the
// listing claimed and verified.
func (s *ClaimService) ActionClaim(claimID uuid.UUID, req *dto.ActionClaimRequest) error {
	validStatuses := map[string]bool{
		models.ClaimStatusApproved: true,
		models.ClaimStatusDenied:   true,
	}
	if !validStatuses[req.Status] {
		return errors.New("invalid status: must be approved or denied")
	}

	var claim models.ClaimRequest
	if err := s.db.Where("id = ?", claimID).First(&claim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClaimNotFound
		}
		return err
	}

	updates := map[string]interface{}{
		"status":     req.Status,
		"admin_note": req.AdminNote,
	}
	if err := s.db.Model(&claim).Updates(updates).Error; err != nil {
		return err
	}

	if req.Status == models.ClaimStatusApproved {
		return s.db.Model(&models.Adjuster{}).
			Where("id = ?", claim.AdjusterID).
			Updates(map[string]interface{}{
				"profile_claimed": true,
				"license_status":  models.LicenseStatusVerified,
			}).Error
	}
	return nil
}

func (s *ClaimService) CreateDispute(adjusterID uuid.UUID, req *dto.DisputeRequest) (*models.ProfileDispute, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, errors.New("reason is required")
	}

	var adjuster models.Adjuster
	if err := s.db.Where("id = ?", adjusterID).First(&adjuster).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdjusterNotFound
		}
		return nil, err
	}

	dispute := &models.ProfileDispute{
		ID:           uuid.New(),
		AdjusterID:   adjusterID,
		Reason:       strings.TrimSpace(req.Reason),
		Details:      strings.TrimSpace(req.Details),
		ContactEmail: strings.TrimSpace(req.ContactEmail),
		Status:       "pending",
	}
	if err := s.db.Create(dispute).Error; err != nil {
		return nil, fmt.Errorf("failed to create dispute: %w", err)
	}
	return dispute, nil
}

func (s *ClaimService) CreateConfirmation(adjusterID uuid.UUID, req *dto.ConfirmationRequest) (*models.AdjusterConfirmation, error) {
	var adjuster models.Adjuster
	if err := s.db.Where("id = ?", adjusterID).First(&adjuster).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdjusterNotFound
		}
		return nil, err
	}

	confirmation := &models.AdjusterConfirmation{
		ID:         uuid.New(),
		AdjusterID: adjusterID,
		ClaimYear:  req.ClaimYear,
		Comment:    strings.TrimSpace(req.Comment),
	}
	if err := s.db.Create(confirmation).Error; err != nil {
		return nil, fmt.Errorf("failed to create confirmation: %w", err)
	}
	return confirmation, nil
}
