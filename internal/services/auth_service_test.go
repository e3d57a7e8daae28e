package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/openadjusters/directory-backend/internal/config"
	"github.com/openadjusters/directory-backend/internal/dto"
	"github.com/openadjusters/directory-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret", JWTAccessExpiry: time.Hour}
	svc := NewAuthService(db, cfg)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.AdminUser{
		ID:       uuid.New(),
		Email:    "mod@example.com",
		Password: string(hash),
		Role:     "admin",
	}).Error)

	resp, err := svc.Login(&dto.LoginRequest{Email: "mod@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "mod@example.com", resp.User.Email)

	token, err := jwt.Parse(resp.AccessToken, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["role"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret", JWTAccessExpiry: time.Hour}
	svc := NewAuthService(db, cfg)

	_, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	require.NoError(t, db.Create(&models.AdminUser{
		ID:       uuid.New(),
		Email:    "mod@example.com",
		Password: string(hash),
	}).Error)

	_, err = svc.Login(&dto.LoginRequest{Email: "mod@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
