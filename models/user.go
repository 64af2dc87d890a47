package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleMember  = "MEMBER"
	RoleAdmin   = "ADMIN"
	RoleTrainer = "TRAINER"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
	Name     string `json:"name"`
	Role     string `gorm:"type:varchar(10);default:'MEMBER';index" json:"role"`
	Image    string `json:"image"`

	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Goals   string  `json:"goals"`
	Weight  float64 `json:"weight"`
	Height  float64 `json:"height"`

	// Streak state, mutated only by the check-in service.
	Streak      int        `gorm:"default:0" json:"streak"`
	LastCheckIn *time.Time `json:"lastCheckIn"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`

	Subscription *Subscription `gorm:"foreignKey:UserID" json:"subscription,omitempty"`
	Bookings     []Booking     `gorm:"foreignKey:UserID" json:"-"`
	StreakLogs   []StreakLog   `gorm:"foreignKey:UserID" json:"-"`
	Payments     []Payment     `gorm:"foreignKey:UserID" json:"-"`
}
