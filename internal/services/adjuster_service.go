package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/openadjusters/directory-backend/internal/database"
	"github.com/openadjusters/directory-backend/internal/dto"
	"github.com/openadjusters/directory-backend/internal/models"
	"github.com/openadjusters/directory-backend/internal/states"
	"gorm.io/gorm"
)

var (
	ErrAdjusterNotFound = errors.New("adjuster not found")
	ErrSlugExists       = errors.New("a profile for this name and state already exists; search the directory instead of creating a duplicate")
	ErrInvalidState     = errors.New("state must be a valid two-letter US state abbreviation")
	ErrMissingName      = errors.New("first name and last name are required")
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL slug for an adjuster profile: each part is
// lowercased, runs of non-alphanumerics collapse to a single hyphen, and the
// parts join as first-last-state. Deterministic by design; two people with
// the same normalized name and state collide and the second submission is
// rejected.
func Slugify(firstName, lastName, state string) string {
	parts := []string{firstName, lastName, state}
	for i, p := range parts {
		p = nonAlnum.ReplaceAllString(strings.ToLower(p), "-")
		parts[i] = strings.Trim(p, "-")
	}
	return strings.Join(parts, "-")
}

type AdjusterService struct {
	db *gorm.DB
}

func NewAdjusterService(db *gorm.DB) *AdjusterService {
	return &AdjusterService{db: db}
}

// CreateProfile validates the submission, derives the slug, and inserts a
// pending_verification listing. The existence check is best-effort; the
// unique index on slug is the real guard, so a concurrent duplicate insert
// also surfaces as ErrSlugExists rather than a generic failure.
func (s *AdjusterService) CreateProfile(req *dto.CreateAdjusterRequest) (*models.Adjuster, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return nil, ErrMissingName
	}
	if !states.IsValid(req.State) {
		return nil, ErrInvalidState
	}
	state := states.Normalize(req.State)

	slug := Slugify(firstName, lastName, state)

	var existing models.Adjuster
	err := s.db.Where("slug = ?", slug).First(&existing).Error
	if err == nil {
		return nil, ErrSlugExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	adjuster := &models.Adjuster{
		ID:            uuid.New(),
		FirstName:     firstName,
		LastName:      lastName,
		State:         state,
		City:          strings.TrimSpace(req.City),
		Company:       strings.TrimSpace(req.Company),
		Slug:          slug,
		License:       strings.TrimSpace(req.License),
		LicenseStatus: models.LicenseStatusPending,
	}

	if err := s.db.Create(adjuster).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugExists
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return adjuster, nil
}

// GetBySlug returns a listing with its approved reviews preloaded.
func (s *AdjusterService) GetBySlug(slug string) (*models.Adjuster, error) {
	var adjuster models.Adjuster
	err := database.WithRetry(func() error {
		return s.db.
			Preload("Reviews", "status = ?", models.ReviewStatusApproved).
			Where("slug = ?", slug).
			First(&adjuster).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdjusterNotFound
		}
		return nil, err
	}
	return &adjuster, nil
}

func (s *AdjusterService) GetByID(id uuid.UUID) (*models.Adjuster, error) {
	var adjuster models.Adjuster
	if err := s.db.Where("id = ?", id).First(&adjuster).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdjusterNotFound
		}
		return nil, err
	}
	return &adjuster, nil
}
