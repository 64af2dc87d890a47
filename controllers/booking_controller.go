package controllers

import (
	"net/http"
	"strconv"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/middlewares"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/services"

	"github.com/gin-gonic/gin"
)

type BookingInput struct {
	ClassID uint `json:"class_id" binding:"required"`
}

func CreateBooking(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking data"})
		return
	}

	booking, err := services.BookClass(userID, input.ClassID)
	if err != nil {
		switch err {
		case services.ErrClassNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		case services.ErrClassFull:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Class is full"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func ListBookings(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	bookings, err := services.ListBookings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func CancelBooking(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	booking, err := services.CancelBooking(userID, uint(id))
	if err != nil {
		if err == services.ErrBookingNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}
	c.JSON(http.StatusOK, booking)
}
