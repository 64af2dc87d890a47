package services

import (
	"testing"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	db := setupTestDB(t)

	user, err := RegisterUser("new@pulseflowgym.com", "Secret123", "New Member")
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, user.Role)
	assert.NotEqual(t, "Secret123", user.Password, "password must be stored hashed")
	assert.True(t, utils.CheckPasswordHash("Secret123", user.Password))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	setupTestDB(t)

	_, err := RegisterUser("dup@pulseflowgym.com", "Secret123", "First")
	require.NoError(t, err)

	_, err = RegisterUser("dup@pulseflowgym.com", "Other456", "Second")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticateUser(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := RegisterUser("login@pulseflowgym.com", "Secret123", "Member")
	require.NoError(t, err)

	token, err := AuthenticateUser("login@pulseflowgym.com", "Secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, claims.Role)
}

func TestAuthenticateUser_WrongPassword(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := RegisterUser("login@pulseflowgym.com", "Secret123", "Member")
	require.NoError(t, err)

	_, err = AuthenticateUser("login@pulseflowgym.com", "wrong")
	assert.Error(t, err)

	_, err = AuthenticateUser("nobody@pulseflowgym.com", "Secret123")
	assert.Error(t, err)
}
