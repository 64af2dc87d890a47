package models

import "gorm.io/gorm"

type Announcement struct {
	gorm.Model
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`
	Active  bool   `gorm:"index" json:"active"` // set explicitly on create, see plan.go
}
