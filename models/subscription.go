package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SubscriptionActive    = "ACTIVE"
	SubscriptionExpired   = "EXPIRED"
	SubscriptionCancelled = "CANCELLED"
)

type Subscription struct {
	gorm.Model
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	PlanID    uint      `gorm:"index;not null" json:"plan_id"`
	Plan      GymPlan   `gorm:"foreignKey:PlanID" json:"plan"`
	Status    string    `gorm:"type:varchar(20);default:'ACTIVE';index" json:"status"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
