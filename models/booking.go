package models

import "gorm.io/gorm"

const (
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
)

type Booking struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	ClassID uint   `gorm:"index;not null" json:"class_id"`
	Class   Class  `gorm:"foreignKey:ClassID" json:"class"`
	Status  string `gorm:"type:varchar(20);default:'CONFIRMED';index" json:"status"`
}
