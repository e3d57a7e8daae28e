package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/openadjusters/directory-backend/internal/dto"
	"github.com/openadjusters/directory-backend/internal/moderation"
	"github.com/openadjusters/directory-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrContentRequired = errors.New("review content must be at least 10 characters")
	ErrContentBlocked  = errors.New("review contains content that is not allowed")
)

type ReviewService struct {
	db      *gorm.DB
	scanner *moderation.Scanner
}

func NewReviewService(db *gorm.DB, scanner *moderation.Scanner) *ReviewService {
	return &ReviewService{db: db, scanner: scanner}
}

// Submit validates and scans a review, then stores it as pending. Only
// block-severity scan findings reject the submission; the full issue list is
// returned either way so the author can see warn/info findings.
func (s *ReviewService) Submit(adjusterID uuid.UUID, req *dto.CreateReviewRequest) (*models.Review, []moderation.Issue, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, nil, ErrInvalidRating
	}
	content := strings.TrimSpace(req.Content)
	if len(content) < 10 {
		return nil, nil, ErrContentRequired
	}

	var adjuster models.Adjuster
	if err := s.db.Where("id = ?", adjusterID).First(&adjuster).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrAdjusterNotFound
		}
		return nil, nil, err
	}

	issues := s.scanner.Scan(content)
	if moderation.Blocked(issues) {
		return nil, issues, ErrContentBlocked
	}

	review := &models.Review{
		ID:            uuid.New(),
		AdjusterID:    adjusterID,
		Rating:        req.Rating,
		Title:         strings.TrimSpace(req.Title),
		Content:       content,
		ReviewerName:  strings.TrimSpace(req.ReviewerName),
		ReviewerEmail: strings.TrimSpace(req.ReviewerEmail),
		ClaimType:     req.ClaimType,
		Status:        models.ReviewStatusPending,
	}
	if len(issues) > 0 {
		if b, err := json.Marshal(issues); err == nil {
			review.ScanIssues = datatypes.JSON(b)
		}
	}

	if err := s.db.Create(review).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, issues, nil
}

func (s *ReviewService) ListByStatus(status string, limit, offset int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	query := s.db.Model(&models.Review{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// Action sets a review's moderation status. The decision itself is made
// out-of-band; this only records it and refreshes the adjuster's
// denormalized aggregates.
func (s *ReviewService) Action(reviewID uuid.UUID, req *dto.ActionReviewRequest) error {
	validStatuses := map[string]bool{
		models.ReviewStatusApproved: true,
		models.ReviewStatusRejected: true,
		models.ReviewStatusFlagged:  true,
	}
	if !validStatuses[req.Status] {
		return errors.New("invalid status: must be approved, rejected, or flagged")
	}

	var review models.Review
	if err := s.db.Where("id = ?", reviewID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	updates := map[string]interface{}{
		"status":     req.Status,
		"admin_note": req.AdminNote,
	}
	if err := s.db.Model(&review).Updates(updates).Error; err != nil {
		return err
	}
	return s.RecalculateAggregates(review.AdjusterID)
}

// RecalculateAggregates recomputes the denormalized rating columns from the
// approved review rows.
func (s *ReviewService) RecalculateAggregates(adjusterID uuid.UUID) error {
	var reviews []models.Review
	if err := s.db.
		Where("adjuster_id = ? AND status = ?", adjusterID, models.ReviewStatusApproved).
		Find(&reviews).Error; err != nil {
		return err
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := 0.0
	if len(reviews) > 0 {
		avg = math.Round(float64(sum)/float64(len(reviews))*100) / 100
	}

	return s.db.Model(&models.Adjuster{}).
		Where("id = ?", adjusterID).
		Updates(map[string]interface{}{
			"rating_avg":   avg,
			"rating_count": len(reviews),
		}).Error
}

// Report files a review report. Append-only; validation is presence checks.
func (s *ReviewService) Report(reviewID uuid.UUID, req *dto.ReportReviewRequest) (*models.ReviewReport, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, errors.New("reason is required")
	}

	var review models.Review
	if err := s.db.Where("id = ?", reviewID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	report := &models.ReviewReport{
		ID:            uuid.New(),
		ReviewID:      reviewID,
		Reason:        strings.TrimSpace(req.Reason),
		ReporterEmail: strings.TrimSpace(req.ReporterEmail),
		Status:        "pending",
	}
	if err := s.db.Create(report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return report, nil
}

// VoteFairness records a was-this-fair vote on a review.
func (s *ReviewService) VoteFairness(reviewID uuid.UUID, fair bool, voterHash string) (*models.FairnessVote, error) {
	var review models.Review
	if err := s.db.Where("id = ?", reviewID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	vote := &models.FairnessVote{
		ID:        uuid.New(),
		ReviewID:  reviewID,
		Fair:      fair,
		VoterHash: voterHash,
	}
	if err := s.db.Create(vote).Error; err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}
	return vote, nil
}

func (s *ReviewService) ListReports(status string, limit, offset int) ([]models.ReviewReport, int64, error) {
	var reports []models.ReviewReport
	var total int64

	query := s.db.Model(&models.ReviewReport{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}
