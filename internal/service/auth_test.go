package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenledger/backend/internal/testhelpers"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("Test Baker", "baker@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "baker@example.com", claims.Email)
	assert.NotEqual(t, claims.UserID.String(), "00000000-0000-0000-0000-000000000000")

	loginToken, err := svc.Login("baker@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("First", "dup@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register("Second", "dup@example.com", "password456")
	assert.Error(t, err)
}

func TestAuthService_WrongPassword(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("Test Baker", "baker@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Login("baker@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RejectsTamperedToken(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	other := NewAuthService(db, "other-secret")

	token, err := svc.Register("Test Baker", "baker@example.com", "password123")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
