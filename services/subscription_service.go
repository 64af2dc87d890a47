package services

import (
	"errors"
	"time"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/config"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/utils"

	"gorm.io/gorm"
)

// Checkout charges the (mock) gateway for a plan, records the payment and
// activates the member's subscription for the plan's duration.
func Checkout(userID, planID uint, method string) (*models.Subscription, *models.Payment, error) {
	var plan models.GymPlan
	if err := config.DB.Where("id = ? AND active = ?", planID, true).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPlanNotFound
		}
		return nil, nil, err
	}

	reference, err := utils.ProcessPaymentStub(plan.Price, method)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	payment := models.Payment{
		UserID:    userID,
		PlanID:    plan.ID,
		Amount:    plan.Price,
		Reference: reference,
		Method:    method,
		Status:    models.PaymentCompleted,
	}

	var sub models.Subscription
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		sub = models.Subscription{
			UserID:    userID,
			PlanID:    plan.ID,
			Status:    models.SubscriptionActive,
			StartDate: now,
			EndDate:   now.AddDate(0, plan.Duration, 0),
		}
		return tx.Where("user_id = ?", userID).
			Assign(map[string]interface{}{
				"plan_id":    plan.ID,
				"status":     models.SubscriptionActive,
				"start_date": now,
				"end_date":   now.AddDate(0, plan.Duration, 0),
			}).
			FirstOrCreate(&sub).Error
	})
	if err != nil {
		return nil, nil, err
	}

	sub.Plan = plan
	return &sub, &payment, nil
}

func ListPayments(userID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&payments).Error
	return payments, err
}
