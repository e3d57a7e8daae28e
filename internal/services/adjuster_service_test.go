package services

import (
	"testing"

	"github.com/openadjusters/directory-backend/internal/dto"
	"github.com/openadjusters/directory-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdjusterService(db)

	adjuster, err := svc.CreateProfile(&dto.CreateAdjusterRequest{
		FirstName: "John",
		LastName:  "Smith",
		State:     "ca",
		City:      "Sacramento",
		Company:   "Acme Insurance",
	})
	require.NoError(t, err)

	assert.Equal(t, "john-smith-ca", adjuster.Slug)
	assert.Equal(t, "CA", adjuster.State)
	assert.Equal(t, models.LicenseStatusPending, adjuster.LicenseStatus)
	assert.False(t, adjuster.ProfileClaimed)
}

func TestCreateProfile_DuplicateRejectedWithCollisionError(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdjusterService(db)

	req := &dto.CreateAdjusterRequest{FirstName: "John", LastName: "Smith", State: "CA"}

	_, err := svc.CreateProfile(req)
	require.NoError(t, err)

	// The second identical submission must fail with the collision error,
	// not a generic insert failure.
	_, err = svc.CreateProfile(req)
	assert.ErrorIs(t, err, ErrSlugExists)

	var count int64
	db.Model(&models.Adjuster{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateProfile_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdjusterService(db)

	_, err := svc.CreateProfile(&dto.CreateAdjusterRequest{FirstName: "  ", LastName: "Smith", State: "CA"})
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = svc.CreateProfile(&dto.CreateAdjusterRequest{FirstName: "John", LastName: "Smith", State: "XX"})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestGetBySlug_PreloadsOnlyApprovedReviews(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdjusterService(db)

	a := seedAdjuster(t, db, "John", "Smith", "CA")
	seedReview(t, db, a.ID, 5, models.ReviewStatusApproved)
	seedReview(t, db, a.ID, 1, models.ReviewStatusPending)
	seedReview(t, db, a.ID, 2, models.ReviewStatusRejected)

	found, err := svc.GetBySlug("john-smith-ca")
	require.NoError(t, err)
	require.Len(t, found.Reviews, 1)
	assert.Equal(t, models.ReviewStatusApproved, found.Reviews[0].Status)
}

func TestGetBySlug_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdjusterService(db)

	_, err := svc.GetBySlug("nobody-here-zz")
	assert.ErrorIs(t, err, ErrAdjusterNotFound)
}
