package controllers

import (
	"net/http"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/config"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"

	"github.com/gin-gonic/gin"
)

// ListAnnouncements returns the five most recent active announcements.
// Public: the landing page polls it.
func ListAnnouncements(c *gin.Context) {
	var announcements []models.Announcement
	err := config.DB.
		Where("active = ?", true).
		Order("created_at desc").
		Limit(5).
		Find(&announcements).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch announcements"})
		return
	}
	c.JSON(http.StatusOK, announcements)
}

type AnnouncementInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func CreateAnnouncement(c *gin.Context) {
	var input AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement := models.Announcement{
		Title:   input.Title,
		Content: input.Content,
		Active:  true,
	}
	if err := config.DB.Create(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post announcement"})
		return
	}
	c.JSON(http.StatusCreated, announcement)
}
