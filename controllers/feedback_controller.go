package controllers

import (
	"net/http"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/config"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/middlewares"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"

	"github.com/gin-gonic/gin"
)

func SubmitFeedback(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	feedback := models.Feedback{
		UserID:  userID,
		Message: input.Message,
	}
	if err := config.DB.Create(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feedback"})
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

func ListFeedback(c *gin.Context) {
	var feedback []models.Feedback
	err := config.DB.
		Preload("User").
		Order("created_at desc").
		Find(&feedback).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}
	c.JSON(http.StatusOK, feedback)
}
