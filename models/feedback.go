package models

import "gorm.io/gorm"

type Feedback struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	Message string `gorm:"not null" json:"message"`
}
