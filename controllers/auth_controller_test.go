package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/config"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateAll(db))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })

	return db
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", Login)
	r.POST("/api/auth/forgot-password", ForgotPassword)
	r.POST("/api/auth/reset-password", ResetPassword)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestForgotPassword_PersistsResetToken(t *testing.T) {
	db := setupAuthTest(t)
	r := authRouter()

	hashed, err := utils.HashPassword("Secret123")
	require.NoError(t, err)
	user := models.User{Email: "member@pulseflowgym.com", Password: hashed, Role: models.RoleMember}
	require.NoError(t, db.Create(&user).Error)

	w := postJSON(t, r, "/api/auth/forgot-password", `{"email":"member@pulseflowgym.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// the code the user is told about must actually be stored
	var saved models.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	assert.Len(t, saved.ResetToken, 6)
	assert.True(t, saved.ResetTokenExp.After(time.Now()))
}

func TestForgotPassword_UnknownEmailStaysGeneric(t *testing.T) {
	setupAuthTest(t)
	r := authRouter()

	w := postJSON(t, r, "/api/auth/forgot-password", `{"email":"nobody@pulseflowgym.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "If the email exists")
}

func TestResetPassword_FullFlow(t *testing.T) {
	db := setupAuthTest(t)
	r := authRouter()

	hashed, err := utils.HashPassword("OldSecret1")
	require.NoError(t, err)
	user := models.User{Email: "member@pulseflowgym.com", Password: hashed, Role: models.RoleMember}
	require.NoError(t, db.Create(&user).Error)

	w := postJSON(t, r, "/api/auth/forgot-password", `{"email":"member@pulseflowgym.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var saved models.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	require.NotEmpty(t, saved.ResetToken)

	w = postJSON(t, r, "/api/auth/reset-password",
		fmt.Sprintf(`{"token":%q,"new_password":"NewSecret1"}`, saved.ResetToken))
	require.Equal(t, http.StatusOK, w.Code)

	// old password out, new password in
	w = postJSON(t, r, "/api/auth/login", `{"email":"member@pulseflowgym.com","password":"OldSecret1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = postJSON(t, r, "/api/auth/login", `{"email":"member@pulseflowgym.com","password":"NewSecret1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	db := setupAuthTest(t)
	r := authRouter()

	user := models.User{
		Email:         "member@pulseflowgym.com",
		Password:      "x",
		Role:          models.RoleMember,
		ResetToken:    "abc123",
		ResetTokenExp: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&user).Error)

	w := postJSON(t, r, "/api/auth/reset-password", `{"token":"abc123","new_password":"NewSecret1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
