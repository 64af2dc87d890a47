package models

import "gorm.io/gorm"

const (
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
)

type Payment struct {
	gorm.Model
	UserID    uint    `gorm:"index;not null" json:"user_id"`
	PlanID    uint    `gorm:"index" json:"plan_id"`
	Amount    float64 `gorm:"type:decimal(10,2)" json:"amount"`
	Reference string  `gorm:"uniqueIndex" json:"reference"`
	Method    string  `gorm:"size:50" json:"method"`
	Status    string  `gorm:"type:varchar(20);default:'COMPLETED'" json:"status"`
}
