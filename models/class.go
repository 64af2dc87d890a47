package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	IntensityLow    = "LOW"
	IntensityMedium = "MEDIUM"
	IntensityHigh   = "HIGH"
)

type Class struct {
	gorm.Model
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Trainer     string    `json:"trainer"`
	Time        time.Time `gorm:"index" json:"time"`
	Duration    int       `json:"duration"` // minutes
	Capacity    int       `gorm:"not null" json:"capacity"`
	// Booked counts CONFIRMED bookings and is only changed by the
	// conditional update in the booking service, so it can never
	// pass Capacity.
	Booked    int       `gorm:"default:0" json:"booked"`
	Intensity string    `gorm:"type:varchar(10);default:'MEDIUM'" json:"intensity"`
	Bookings  []Booking `gorm:"foreignKey:ClassID" json:"-"`
}
