package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkPages(t *testing.T) {
	assert.Equal(t, 1, chunkPages(1))
	assert.Equal(t, 1, chunkPages(50000))
	assert.Equal(t, 2, chunkPages(50001))
	assert.Equal(t, 3, chunkPages(150000))
}

func TestSitemapIndex(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSitemapService(db, "https://example.com/")

	seedAdjuster(t, db, "John", "Smith", "CA")
	seedAdjuster(t, db, "Jane", "Doe", "TX")

	body, err := svc.Index(context.Background())
	require.NoError(t, err)

	out := string(body)
	assert.Contains(t, out, `<?xml`)
	assert.Contains(t, out, "<sitemapindex")
	assert.Contains(t, out, "https://example.com/sitemaps/states/ca.xml")
	assert.Contains(t, out, "https://example.com/sitemaps/states/tx.xml")
	assert.Contains(t, out, "https://example.com/sitemaps/cities.xml")
	// States with no listings stay out of the index.
	assert.NotContains(t, out, "/sitemaps/states/wy.xml")
}

func TestStateSitemap(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSitemapService(db, "https://example.com")

	a := seedAdjuster(t, db, "John", "Smith", "CA")
	seedAdjuster(t, db, "Jane", "Doe", "TX")

	body, err := svc.StateSitemap(context.Background(), "ca", 1)
	require.NoError(t, err)

	out := string(body)
	assert.Contains(t, out, "<urlset")
	assert.Contains(t, out, "https://example.com/adjuster/john-smith-ca")
	assert.Contains(t, out, a.UpdatedAt.Format("2006-01-02"))
	assert.NotContains(t, out, "jane-doe-tx")
}

func TestStateSitemap_UnknownState(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSitemapService(db, "https://example.com")

	_, err := svc.StateSitemap(context.Background(), "zz", 1)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCitiesSitemap(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSitemapService(db, "https://example.com")

	a := seedAdjuster(t, db, "John", "Smith", "CA")
	require.NoError(t, db.Model(a).Update("city", "San Francisco").Error)
	b := seedAdjuster(t, db, "Jane", "Doe", "CA")
	require.NoError(t, db.Model(b).Update("city", "San Francisco").Error)

	body, err := svc.CitiesSitemap(context.Background())
	require.NoError(t, err)

	out := string(body)
	assert.Contains(t, out, "https://example.com/states/ca/san-francisco")
	// Two listings in the same city yield one URL.
	assert.Equal(t, 1, strings.Count(out, "san-francisco"))
}

func TestListByState(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDirectoryService(db)

	seedAdjuster(t, db, "John", "Smith", "CA")
	seedAdjuster(t, db, "Jane", "Doe", "CA")
	seedAdjuster(t, db, "Tom", "Cruz", "TX")

	adjusters, total, err := svc.ListByState("ca", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, adjusters, 2)
	for _, a := range adjusters {
		assert.Equal(t, "CA", a.State)
	}

	// Paging.
	adjusters, total, err = svc.ListByState("CA", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, adjusters, 1)

	_, _, err = svc.ListByState("ZZ", 10, 0)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestStatesOverview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDirectoryService(db)

	seedAdjuster(t, db, "John", "Smith", "CA")
	seedAdjuster(t, db, "Jane", "Doe", "CA")
	seedAdjuster(t, db, "Tom", "Cruz", "TX")

	overview, err := svc.StatesOverview(context.Background())
	require.NoError(t, err)

	counts := make(map[string]int64, len(overview))
	for _, o := range overview {
		counts[o.State] = o.Count
	}
	assert.Equal(t, int64(2), counts["CA"])
	assert.Equal(t, int64(1), counts["TX"])
	assert.Equal(t, int64(0), counts["WY"])
}
