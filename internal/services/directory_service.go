package services

import (
	"context"

	"github.com/openadjusters/directory-backend/internal/dto"
	"github.com/openadjusters/directory-backend/internal/models"
	"github.com/openadjusters/directory-backend/internal/states"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DirectoryService builds the browse-by-state views.
type DirectoryService struct {
	db *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

// StatesOverview returns the adjuster count for every state, fanned out as
// independent count queries. One failed sub-query fails the whole page.
func (s *DirectoryService) StatesOverview(ctx context.Context) ([]dto.StateOverview, error) {
	overview := make([]dto.StateOverview, len(states.All))

	g, ctx := errgroup.WithContext(ctx)
	for i, state := range states.All {
		i, state := i, state
		g.Go(func() error {
			var count int64
			if err := s.db.WithContext(ctx).
				Model(&models.Adjuster{}).
				Where("state = ?", state).
				Count(&count).Error; err != nil {
				return err
			}
			overview[i] = dto.StateOverview{State: state, Count: count}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}

// ListByState pages through one state's listings, newest first.
func (s *DirectoryService) ListByState(state string, limit, offset int) ([]models.Adjuster, int64, error) {
	if !states.IsValid(state) {
		return nil, 0, ErrInvalidState
	}

	var adjusters []models.Adjuster
	var total int64

	query := s.db.Model(&models.Adjuster{}).Where("state = ?", states.Normalize(state))
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&adjusters).Error; err != nil {
		return nil, 0, err
	}
	return adjusters, total, nil
}
