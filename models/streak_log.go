package models

import (
	"time"

	"gorm.io/gorm"
)

// StreakLog is append-only: one row per user per check-in day.
type StreakLog struct {
	gorm.Model
	UserID uint      `gorm:"index;not null" json:"user_id"`
	Date   time.Time `gorm:"index;not null" json:"date"` // truncated to local midnight
}
