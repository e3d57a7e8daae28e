package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/openadjusters/directory-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory sqlite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Each sqlite :memory: connection is its own database; pin the pool to
	// one connection so the fan-out queries all see the seeded schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Adjuster{},
		&models.Review{},
		&models.ClaimRequest{},
		&models.ProfileDispute{},
		&models.ReviewReport{},
		&models.FairnessVote{},
		&models.AdjusterConfirmation{},
		&models.AdminUser{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedAdjuster(t *testing.T, db *gorm.DB, first, last, state string) *models.Adjuster {
	t.Helper()
	a := &models.Adjuster{
		ID:            uuid.New(),
		FirstName:     first,
		LastName:      last,
		State:         state,
		Slug:          Slugify(first, last, state),
		LicenseStatus: models.LicenseStatusPending,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func seedReview(t *testing.T, db *gorm.DB, adjusterID uuid.UUID, rating int, status string) *models.Review {
	t.Helper()
	r := &models.Review{
		ID:         uuid.New(),
		AdjusterID: adjusterID,
		Rating:     rating,
		Content:    "The claim was handled professionally and on time.",
		Status:     status,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}
