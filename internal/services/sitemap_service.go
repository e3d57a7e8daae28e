package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/openadjusters/directory-backend/internal/database"
	"github.com/openadjusters/directory-backend/internal/models"
	"github.com/openadjusters/directory-backend/internal/states"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ChunkSize is the industry-standard cap of 50,000 URLs per sitemap file.
// In practice only Texas exceeds it, so its state sitemap paginates.
const ChunkSize = 50000

type URLEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type URLSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []URLEntry `xml:"url"`
}

type SitemapRef struct {
	Loc string `xml:"loc"`
}

type SitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	XMLNS    string       `xml:"xmlns,attr"`
	Sitemaps []SitemapRef `xml:"sitemap"`
}

const sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SitemapService struct {
	db      *gorm.DB
	baseURL string
}

func NewSitemapService(db *gorm.DB, baseURL string) *SitemapService {
	return &SitemapService{db: db, baseURL: strings.TrimRight(baseURL, "/")}
}

// Index emits the sitemap index: one entry per state, split into fixed-size
// chunks when a state exceeds ChunkSize URLs, plus the cities sitemap.
func (s *SitemapService) Index(ctx context.Context) ([]byte, error) {
	counts := make([]int64, len(states.All))

	g, ctx := errgroup.WithContext(ctx)
	for i, state := range states.All {
		i, state := i, state
		g.Go(func() error {
			return s.db.WithContext(ctx).
				Model(&models.Adjuster{}).
				Where("state = ?", state).
				Count(&counts[i]).Error
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	index := SitemapIndex{XMLNS: sitemapXMLNS}
	for i, state := range states.All {
		if counts[i] == 0 {
			continue
		}
		lower := strings.ToLower(state)
		pages := chunkPages(counts[i])
		if pages == 1 {
			index.Sitemaps = append(index.Sitemaps, SitemapRef{
				Loc: fmt.Sprintf("%s/sitemaps/states/%s.xml", s.baseURL, lower),
			})
			continue
		}
		for page := 1; page <= pages; page++ {
			index.Sitemaps = append(index.Sitemaps, SitemapRef{
				Loc: fmt.Sprintf("%s/sitemaps/states/%s.xml?page=%d", s.baseURL, lower, page),
			})
		}
	}
	index.Sitemaps = append(index.Sitemaps, SitemapRef{
		Loc: s.baseURL + "/sitemaps/cities.xml",
	})

	return marshalXML(index)
}

// StateSitemap emits profile URLs for one state. page is 1-based; each page
// holds at most ChunkSize URLs.
func (s *SitemapService) StateSitemap(ctx context.Context, state string, page int) ([]byte, error) {
	if !states.IsValid(state) {
		return nil, ErrInvalidState
	}
	if page < 1 {
		page = 1
	}

	var adjusters []models.Adjuster
	err := database.WithRetry(func() error {
		return s.db.WithContext(ctx).
			Select("slug", "updated_at").
			Where("state = ?", states.Normalize(state)).
			Order("slug").
			Limit(ChunkSize).
			Offset((page - 1) * ChunkSize).
			Find(&adjusters).Error
	})
	if err != nil {
		return nil, err
	}

	set := URLSet{XMLNS: sitemapXMLNS}
	for _, a := range adjusters {
		set.URLs = append(set.URLs, URLEntry{
			Loc:     s.baseURL + "/adjuster/" + a.Slug,
			LastMod: a.UpdatedAt.Format("2006-01-02"),
		})
	}
	return marshalXML(set)
}

// CitiesSitemap emits city landing-page URLs, gathering the distinct cities
// of every state in parallel.
func (s *SitemapService) CitiesSitemap(ctx context.Context) ([]byte, error) {
	cityLists := make([][]string, len(states.All))

	g, ctx := errgroup.WithContext(ctx)
	for i, state := range states.All {
		i, state := i, state
		g.Go(func() error {
			var cities []string
			if err := s.db.WithContext(ctx).
				Model(&models.Adjuster{}).
				Where("state = ? AND city <> ''", state).
				Distinct("city").
				Order("city").
				Pluck("city", &cities).Error; err != nil {
				return err
			}
			cityLists[i] = cities
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := URLSet{XMLNS: sitemapXMLNS}
	for i, state := range states.All {
		lower := strings.ToLower(state)
		for _, city := range cityLists[i] {
			citySlug := strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(city), "-"), "-")
			if citySlug == "" {
				continue
			}
			set.URLs = append(set.URLs, URLEntry{
				Loc: fmt.Sprintf("%s/states/%s/%s", s.baseURL, lower, citySlug),
			})
		}
	}
	return marshalXML(set)
}

// chunkPages is how many fixed-size sitemap files a state needs.
func chunkPages(count int64) int {
	return int((count + ChunkSize - 1) / ChunkSize)
}

func marshalXML(v interface{}) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
