package services

import (
	"time"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/config"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"

	"gorm.io/gorm"
)

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// NextStreak decides whether a check-in at now is allowed and what the
// streak becomes. Both dates are compared at calendar-day granularity:
//   - last check-in today      -> ErrAlreadyCheckedIn
//   - last check-in yesterday  -> streak + 1
//   - anything else            -> 1 (chain resets; covers no prior
//     check-in, gaps of two or more days, and clock skew into the future)
func NextStreak(streak int, lastCheckIn *time.Time, now time.Time) (int, error) {
	today := dayStartLocal(now)

	if lastCheckIn == nil {
		return 1, nil
	}

	last := dayStartLocal(*lastCheckIn)
	if last.Equal(today) {
		return streak, ErrAlreadyCheckedIn
	}
	if last.Equal(today.AddDate(0, 0, -1)) {
		return streak + 1, nil
	}
	return 1, nil
}

// CheckIn runs the streak tracker for a user and persists the outcome:
// updated streak, lastCheckIn = today, and an append-only StreakLog row.
// Idempotent per calendar day; the second call fails with ErrAlreadyCheckedIn
// and leaves the state untouched.
func CheckIn(userID uint, now time.Time) (int, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	newStreak, err := NextStreak(user.Streak, user.LastCheckIn, now)
	if err != nil {
		return user.Streak, err
	}

	today := dayStartLocal(now)
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Updates(map[string]interface{}{
			"streak":        newStreak,
			"last_check_in": today,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.StreakLog{UserID: userID, Date: today}).Error
	})
	if err != nil {
		return user.Streak, err
	}
	return newStreak, nil
}

// GetStreak returns the user's streak state plus their latest check-in
// history (at most 30 days) for display.
func GetStreak(userID uint) (int, *time.Time, []models.StreakLog, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil, nil, ErrUserNotFound
		}
		return 0, nil, nil, err
	}

	var logs []models.StreakLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(30).
		Find(&logs).Error
	if err != nil {
		return 0, nil, nil, err
	}
	return user.Streak, user.LastCheckIn, logs, nil
}
