package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/openadjusters/directory-backend/internal/dto"
	"github.com/openadjusters/directory-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClaimRequest(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClaimService(db)
	a := seedAdjuster(t, db, "John", "Smith", "CA")

	claim, err := svc.CreateClaimRequest(&dto.ClaimNotificationRequest{
		AdjusterID: a.ID.String(),
		Email:      "john@example.com",
		Phone:      "555-0100",
		Message:    "This is my profile.",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ClaimStatusPending, claim.Status)
	assert.Equal(t, "John Smith", claim.AdjusterName)
	assert.Equal(t, "CA", claim.AdjusterState)
}

func TestCreateClaimRequest_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClaimService(db)
	a := seedAdjuster(t, db, "John", "Smith", "CA")

	_, err := svc.CreateClaimRequest(&dto.ClaimNotificationRequest{
		AdjusterID: a.ID.String(),
		Email:      "  ",
	})
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.CreateClaimRequest(&dto.ClaimNotificationRequest{
		AdjusterID: "not-a-uuid",
		Email:      "john@example.com",
	})
	assert.ErrorIs(t, err, ErrInvalidAdjusterID)

	_, err = svc.CreateClaimRequest(&dto.ClaimNotificationRequest{
		AdjusterID: uuid.NewString(),
		Email:      "john@example.com",
	})
	assert.ErrorIs(t, err, ErrAdjusterNotFound)
}

func TestActionClaim_ApprovalMarksProfileClaimed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClaimService(db)
	a := seedAdjuster(t, db, "John", "Smith", "CA")

	claim, err := svc.CreateClaimRequest(&dto.ClaimNotificationRequest{
		AdjusterID: a.ID.String(),
		Email:      "john@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ActionClaim(claim.ID, &dto.ActionClaimRequest{Status: models.ClaimStatusApproved}))

	var updated models.Adjuster
	require.NoError(t, db.First(&updated, "id = ?", a.ID).Error)
	assert.True(t, updated.ProfileClaimed)
	assert.Equal(t, models.LicenseStatusVerified, updated.LicenseStatus)
}

func TestActionClaim_DenialLeavesProfileUntouched(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClaimService(db)
	a := seedAdjuster(t, db, "John", "Smith", "CA")

	claim, err := svc.CreateClaimRequest(&dto.ClaimNotificationRequest{
		AdjusterID: a.ID.String(),
		Email:      "impostor@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ActionClaim(claim.ID, &dto.ActionClaimRequest{Status: models.ClaimStatusDenied, AdminNote: "could not verify identity"}))

	var updated models.Adjuster
	require.NoError(t, db.First(&updated, "id = ?", a.ID).Error)
	assert.False(t, updated.ProfileClaimed)
	assert.Equal(t, models.LicenseStatusPending, updated.LicenseStatus)
}

func TestActionClaim_Errors(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClaimService(db)

	err := svc.ActionClaim(uuid.New(), &dto.ActionClaimRequest{Status: models.ClaimStatusApproved})
	assert.ErrorIs(t, err, ErrClaimNotFound)

	a := seedAdjuster(t, db, "John", "Smith", "CA")
	claim, err := svc.CreateClaimRequest(&dto.ClaimNotificationRequest{
		AdjusterID: a.ID.String(),
		Email:      "john@example.com",
	})
	require.NoError(t, err)

	err = svc.ActionClaim(claim.ID, &dto.ActionClaimRequest{Status: "maybe"})
	assert.Error(t, err)
}

func TestCreateDispute(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClaimService(db)
	a := seedAdjuster(t, db, "John", "Smith", "CA")

	dispute, err := svc.CreateDispute(a.ID, &dto.DisputeRequest{
		Reason:  "wrong_company",
		Details: "I have not worked for Acme since 2022.",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", dispute.Status)

	_, err = svc.CreateDispute(a.ID, &dto.DisputeRequest{Reason: ""})
	assert.Error(t, err)

	_, err = svc.CreateDispute(uuid.New(), &dto.DisputeRequest{Reason: "wrong_state"})
	assert.ErrorIs(t, err, ErrAdjusterNotFound)
}

func TestCreateConfirmation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClaimService(db)
	a := seedAdjuster(t, db, "John", "Smith", "CA")

	confirmation, err := svc.CreateConfirmation(a.ID, &dto.ConfirmationRequest{ClaimYear: 2024})
	require.NoError(t, err)
	assert.Equal(t, 2024, confirmation.ClaimYear)

	_, err = svc.CreateConfirmation(uuid.New(), &dto.ConfirmationRequest{})
	assert.ErrorIs(t, err, ErrAdjusterNotFound)
}
