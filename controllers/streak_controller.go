package controllers

import (
	"net/http"
	"time"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/middlewares"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/services"

	"github.com/gin-gonic/gin"
)

func GetStreak(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	streak, lastCheckIn, logs, err := services.GetStreak(userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch streak"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"streak":      streak,
		"lastCheckIn": lastCheckIn,
		"streakLogs":  logs,
	})
}

func CheckIn(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	streak, err := services.CheckIn(userID, time.Now())
	if err != nil {
		switch err {
		case services.ErrAlreadyCheckedIn:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already checked in today"})
		case services.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check in"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Check-in successful!",
		"streak":  streak,
	})
}
