package controllers

import (
	"net/http"
	"time"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/middlewares"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/services"

	"github.com/gin-gonic/gin"
)

func GetDashboard(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	dash, err := services.GetMemberDashboard(userID, time.Now())
	if err != nil {
		if err == services.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard data"})
		return
	}
	c.JSON(http.StatusOK, dash)
}

func GetAdminDashboard(c *gin.Context) {
	stats, err := services.GetAdminStats(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admin stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
