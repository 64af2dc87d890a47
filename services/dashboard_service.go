package services

import (
	"errors"
	"math"
	"time"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/config"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"

	"gorm.io/gorm"
)

type UpcomingClass struct {
	ID      uint      `json:"id"`
	Name    string    `json:"name"`
	Time    time.Time `json:"time"`
	Trainer string    `json:"trainer"`
}

type MemberDashboard struct {
	Name            string          `json:"name"`
	Membership      string          `json:"membership"`
	Status          string          `json:"status"`
	RenewalDate     *time.Time      `json:"renewal_date"`
	DaysRemaining   int             `json:"days_remaining"`
	Streak          int             `json:"streak"`
	LastCheckIn     *time.Time      `json:"lastCheckIn"`
	Weight          float64         `json:"weight"`
	Height          float64         `json:"height"`
	UpcomingClasses []UpcomingClass `json:"upcoming_classes"`
}

// GetMemberDashboard aggregates the member home view: subscription state,
// streak, and the next five confirmed classes.
func GetMemberDashboard(userID uint, now time.Time) (*MemberDashboard, error) {
	var user models.User
	err := config.DB.Preload("Subscription.Plan").First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	dash := MemberDashboard{
		Name:        user.Name,
		Membership:  "No Plan",
		Status:      "INACTIVE",
		Streak:      user.Streak,
		LastCheckIn: user.LastCheckIn,
		Weight:      user.Weight,
		Height:      user.Height,
	}

	if user.Subscription != nil {
		dash.Membership = user.Subscription.Plan.Name
		dash.Status = user.Subscription.Status
		end := user.Subscription.EndDate
		dash.RenewalDate = &end
		if days := int(math.Ceil(end.Sub(now).Hours() / 24)); days > 0 {
			dash.DaysRemaining = days
		}
	}

	var bookings []models.Booking
	err = config.DB.
		Preload("Class").
		Joins("JOIN classes ON classes.id = bookings.class_id").
		Where("bookings.user_id = ? AND bookings.status = ? AND classes.time >= ?",
			userID, models.BookingConfirmed, now).
		Order("classes.time asc").
		Limit(5).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	dash.UpcomingClasses = make([]UpcomingClass, 0, len(bookings))
	for _, b := range bookings {
		dash.UpcomingClasses = append(dash.UpcomingClasses, UpcomingClass{
			ID:      b.Class.ID,
			Name:    b.Class.Name,
			Time:    b.Class.Time,
			Trainer: b.Class.Trainer,
		})
	}

	return &dash, nil
}

type AdminStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// GetAdminStats backs the admin dashboard tiles.
func GetAdminStats(now time.Time) ([]AdminStat, error) {
	var totalMembers int64
	if err := config.DB.Model(&models.User{}).
		Where("role = ?", models.RoleMember).
		Count(&totalMembers).Error; err != nil {
		return nil, err
	}

	var activeSubs int64
	if err := config.DB.Model(&models.Subscription{}).
		Where("status = ?", models.SubscriptionActive).
		Count(&activeSubs).Error; err != nil {
		return nil, err
	}

	var revenue float64
	if err := config.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenue).Error; err != nil {
		return nil, err
	}

	var newSignups int64
	if err := config.DB.Model(&models.User{}).
		Where("role = ? AND created_at >= ?", models.RoleMember, now.AddDate(0, 0, -7)).
		Count(&newSignups).Error; err != nil {
		return nil, err
	}

	return []AdminStat{
		{Label: "Total Members", Value: formatInt(totalMembers)},
		{Label: "Active Subscriptions", Value: formatInt(activeSubs)},
		{Label: "Total Revenue", Value: formatAmount(revenue)},
		{Label: "New Signups (7d)", Value: formatInt(newSignups)},
	}, nil
}
