package services

import (
	"testing"
	"time"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, time.January, 20, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name        string
		streak      int
		lastCheckIn *time.Time
		want        int
		wantErr     error
	}{
		{
			name:   "no prior check-in starts at one",
			streak: 0,
			want:   1,
		},
		{
			name:        "yesterday extends the chain",
			streak:      5,
			lastCheckIn: ptr(day(2025, time.January, 19)),
			want:        6,
		},
		{
			name:        "same day rejected",
			streak:      5,
			lastCheckIn: ptr(day(2025, time.January, 20)),
			want:        5,
			wantErr:     ErrAlreadyCheckedIn,
		},
		{
			name:        "same day rejected even with time-of-day difference",
			streak:      3,
			lastCheckIn: ptr(time.Date(2025, time.January, 20, 14, 29, 59, 0, time.Local)),
			want:        3,
			wantErr:     ErrAlreadyCheckedIn,
		},
		{
			name:        "gap of ten days resets",
			streak:      5,
			lastCheckIn: ptr(day(2025, time.January, 10)),
			want:        1,
		},
		{
			name:        "gap of two days resets",
			streak:      9,
			lastCheckIn: ptr(day(2025, time.January, 18)),
			want:        1,
		},
		{
			name:        "future last check-in resets",
			streak:      4,
			lastCheckIn: ptr(day(2025, time.February, 1)),
			want:        1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextStreak(tt.streak, tt.lastCheckIn, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckIn_FirstCheckInToday(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "member@pulseflowgym.com")

	now := time.Date(2025, time.January, 20, 9, 0, 0, 0, time.Local)
	streak, err := CheckIn(user.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)

	var saved models.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	assert.Equal(t, 1, saved.Streak)
	require.NotNil(t, saved.LastCheckIn)
	assert.True(t, saved.LastCheckIn.Equal(day(2025, time.January, 20)))

	var logs []models.StreakLog
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.True(t, logs[0].Date.Equal(day(2025, time.January, 20)))
}

func TestCheckIn_IdempotentPerDay(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "member@pulseflowgym.com")

	morning := time.Date(2025, time.January, 20, 7, 0, 0, 0, time.Local)
	evening := time.Date(2025, time.January, 20, 21, 45, 0, 0, time.Local)

	streak, err := CheckIn(user.ID, morning)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)

	streak, err = CheckIn(user.ID, evening)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	assert.Equal(t, 1, streak)

	// state untouched by the rejected call
	var saved models.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	assert.Equal(t, 1, saved.Streak)

	var count int64
	require.NoError(t, db.Model(&models.StreakLog{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCheckIn_ExtendsAfterYesterday(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "member@pulseflowgym.com")

	last := day(2025, time.January, 19)
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"streak":        5,
		"last_check_in": last,
	}).Error)

	streak, err := CheckIn(user.ID, time.Date(2025, time.January, 20, 6, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, 6, streak)
}

func TestCheckIn_ResetsAfterGap(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "member@pulseflowgym.com")

	last := day(2025, time.January, 10)
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"streak":        5,
		"last_check_in": last,
	}).Error)

	streak, err := CheckIn(user.ID, time.Date(2025, time.January, 20, 6, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestCheckIn_UnknownUser(t *testing.T) {
	setupTestDB(t)

	_, err := CheckIn(999, time.Now())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetStreak_ReturnsRecentLogs(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "member@pulseflowgym.com")

	// 35 historical days, only the latest 30 should come back
	for i := 0; i < 35; i++ {
		log := models.StreakLog{UserID: user.ID, Date: day(2025, time.January, 1).AddDate(0, 0, i)}
		require.NoError(t, db.Create(&log).Error)
	}
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"streak":        35,
		"last_check_in": day(2025, time.February, 4),
	}).Error)

	streak, lastCheckIn, logs, err := GetStreak(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 35, streak)
	require.NotNil(t, lastCheckIn)
	require.Len(t, logs, 30)
	// newest first
	assert.True(t, logs[0].Date.After(logs[len(logs)-1].Date))
}

func ptr(t time.Time) *time.Time { return &t }
