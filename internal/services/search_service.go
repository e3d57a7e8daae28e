package services

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/openadjusters/directory-backend/internal/database"
	"github.com/openadjusters/directory-backend/internal/dto"
	"github.com/openadjusters/directory-backend/internal/models"
	"github.com/openadjusters/directory-backend/internal/states"
	"gorm.io/gorm"
)

// ErrNoFilters means the caller supplied no filter at all. Search refuses to
// scan the whole table; the handler turns this into an empty result with an
// explanatory message.
var ErrNoFilters = errors.New("at least one search filter is required")

const (
	// candidateLimit caps rows pulled from the store before in-memory
	// aggregation; resultLimit caps the final ranked response. Ranking is
	// only correct among the first candidateLimit matches.
	candidateLimit = 100
	resultLimit    = 50
)

// SearchFilters are the explicit search parameters. Query is free text; how
// it is interpreted depends on the legacy-heuristic setting.
type SearchFilters struct {
	Query     string
	State     string
	Company   string
	MinRating *float64
}

type SearchService struct {
	db              *gorm.DB
	legacyHeuristic bool
}

func NewSearchService(db *gorm.DB, legacyHeuristic bool) *SearchService {
	return &SearchService{db: db, legacyHeuristic: legacyHeuristic}
}

// Search queries adjusters with their reviews and ranks them by approved
// review count, then average rating. Aggregates are recomputed from raw
// review rows here; the denormalized columns on adjusters may lag.
func (s *SearchService) Search(f SearchFilters) ([]dto.SearchResult, error) {
	f.Query = strings.TrimSpace(f.Query)
	f.State = strings.TrimSpace(f.State)
	f.Company = strings.TrimSpace(f.Company)

	if f.Query == "" && f.State == "" && f.Company == "" && f.MinRating == nil {
		return nil, ErrNoFilters
	}

	query := s.db.Model(&models.Adjuster{}).Preload("Reviews")

	if f.State != "" {
		if !states.IsValid(f.State) {
			return nil, ErrInvalidState
		}
		query = query.Where("state = ?", states.Normalize(f.State))
	}
	if f.Company != "" {
		query = query.Where("LOWER(company) LIKE ?", "%"+strings.ToLower(f.Company)+"%")
	}
	if f.Query != "" {
		query = s.applyFreeText(query, f)
	}

	// New session so a retried Find starts from a clean statement.
	query = query.Session(&gorm.Session{})

	var adjusters []models.Adjuster
	err := database.WithRetry(func() error {
		return query.Limit(candidateLimit).Find(&adjusters).Error
	})
	if err != nil {
		return nil, err
	}

	results := aggregate(adjusters)

	if f.MinRating != nil {
		filtered := results[:0]
		for _, r := range results {
			// No approved reviews means no rating at all; a threshold of 0
			// still excludes those.
			if r.AvgRating != nil && *r.AvgRating >= *f.MinRating {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].ReviewCount != results[j].ReviewCount {
			return results[i].ReviewCount > results[j].ReviewCount
		}
		return ratingOrZero(results[i].AvgRating) > ratingOrZero(results[j].AvgRating)
	})

	if len(results) > resultLimit {
		results = results[:resultLimit]
	}
	return results, nil
}

// applyFreeText interprets the q parameter. With the legacy heuristic on, a
// token that is itself a state abbreviation becomes a state filter; text
// with whitespace splits into first/last name prefixes; a single token is a
// last-name prefix. With the heuristic off, q is always treated as a name.
func (s *SearchService) applyFreeText(query *gorm.DB, f SearchFilters) *gorm.DB {
	q := f.Query
	if s.legacyHeuristic && f.State == "" && states.IsValid(q) {
		return query.Where("state = ?", states.Normalize(q))
	}

	fields := strings.Fields(strings.ToLower(q))
	if len(fields) >= 2 {
		return query.
			Where("LOWER(first_name) LIKE ?", fields[0]+"%").
			Where("LOWER(last_name) LIKE ?", fields[1]+"%")
	}
	return query.Where("LOWER(last_name) LIKE ?", strings.ToLower(q)+"%")
}

func aggregate(adjusters []models.Adjuster) []dto.SearchResult {
	results := make([]dto.SearchResult, 0, len(adjusters))
	for _, a := range adjusters {
		count := 0
		sum := 0
		for _, r := range a.Reviews {
			if r.Status == models.ReviewStatusApproved {
				count++
				sum += r.Rating
			}
		}

		var avg *float64
		if count > 0 {
			v := math.Round(float64(sum)/float64(count)*100) / 100
			avg = &v
		}

		results = append(results, dto.SearchResult{
			ID:          a.ID.String(),
			Slug:        a.Slug,
			FirstName:   a.FirstName,
			LastName:    a.LastName,
			State:       a.State,
			City:        a.City,
			Company:     a.Company,
			ReviewCount: count,
			AvgRating:   avg,
		})
	}
	return results
}

func ratingOrZero(r *float64) float64 {
	if r == nil {
		return 0
	}
	return *r
}
