package models

import (
	"strings"

	"gorm.io/gorm"
)

// GymPlan is a purchasable membership tier.
type GymPlan struct {
	gorm.Model
	Name     string  `gorm:"uniqueIndex;not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	Features string  `json:"-"` // comma-separated, exposed via FeatureList
	Duration int     `json:"duration"` // months
	// no gorm default: a default tag would make GORM drop Active=false
	// on create and silently resurrect the plan. Creators set it.
	Active bool `json:"active"`
}

func (p *GymPlan) FeatureList() []string {
	if p.Features == "" {
		return []string{}
	}
	return strings.Split(p.Features, ",")
}

func (p *GymPlan) SetFeatures(features []string) {
	p.Features = strings.Join(features, ",")
}
