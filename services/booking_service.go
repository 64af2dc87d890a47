package services

import (
	"github.com/JJ-Data/Pulse-Flow-Gym-App/config"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"

	"gorm.io/gorm"
)

// BookClass admits a booking only while confirmed bookings < capacity.
// The capacity check and the insert happen in one transaction: the
// conditional counter update only matches while booked < capacity, so
// two concurrent bookings cannot both take the last slot.
func BookClass(userID, classID uint) (*models.Booking, error) {
	var booking models.Booking

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var class models.Class
		if err := tx.First(&class, classID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrClassNotFound
			}
			return err
		}

		res := tx.Model(&models.Class{}).
			Where("id = ? AND booked < capacity", classID).
			Update("booked", gorm.Expr("booked + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrClassFull
		}

		booking = models.Booking{
			UserID:  userID,
			ClassID: classID,
			Status:  models.BookingConfirmed,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}

	if err := config.DB.Preload("Class").First(&booking, booking.ID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking flips a confirmed booking to CANCELLED and releases its
// slot. Cancelling twice is a no-op on the counter.
func CancelBooking(userID, bookingID uint) (*models.Booking, error) {
	var booking models.Booking

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", bookingID, userID).First(&booking).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.Status == models.BookingCancelled {
			return nil
		}

		if err := tx.Model(&booking).Update("status", models.BookingCancelled).Error; err != nil {
			return err
		}
		booking.Status = models.BookingCancelled

		return tx.Model(&models.Class{}).
			Where("id = ? AND booked > 0", booking.ClassID).
			Update("booked", gorm.Expr("booked - 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func ListBookings(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := config.DB.
		Preload("Class").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error
	return bookings, err
}
