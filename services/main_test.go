package services

import (
	"fmt"
	"testing"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/config"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package-level config.DB at a fresh in-memory
// sqlite database, one per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    email,
		Password: "x",
		Name:     "Test User",
		Role:     models.RoleMember,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestClass(t *testing.T, db *gorm.DB, name string, capacity int) *models.Class {
	t.Helper()

	class := &models.Class{
		Name:      name,
		Trainer:   "Sarah",
		Duration:  60,
		Capacity:  capacity,
		Intensity: models.IntensityMedium,
	}
	require.NoError(t, db.Create(class).Error)
	return class
}
