package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/config"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListClasses(c *gin.Context) {
	var classes []models.Class
	if err := config.DB.Order("time asc").Find(&classes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch classes"})
		return
	}
	c.JSON(http.StatusOK, classes)
}

type ClassInput struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Trainer     string    `json:"trainer" binding:"required"`
	Time        time.Time `json:"time" binding:"required"`
	Duration    int       `json:"duration" binding:"required,min=1"`
	Capacity    int       `json:"capacity" binding:"required,min=1"`
	Intensity   string    `json:"intensity" binding:"required,oneof=LOW MEDIUM HIGH"`
}

func CreateClass(c *gin.Context) {
	var input ClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class := models.Class{
		Name:        input.Name,
		Description: input.Description,
		Trainer:     input.Trainer,
		Time:        input.Time,
		Duration:    input.Duration,
		Capacity:    input.Capacity,
		Intensity:   input.Intensity,
	}
	if err := config.DB.Create(&class).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create class"})
		return
	}
	c.JSON(http.StatusCreated, class)
}

type ClassUpdateInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Trainer     *string    `json:"trainer"`
	Time        *time.Time `json:"time"`
	Duration    *int       `json:"duration"`
	Capacity    *int       `json:"capacity"`
	Intensity   *string    `json:"intensity"`
}

func UpdateClass(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class id"})
		return
	}

	var class models.Class
	if err := config.DB.First(&class, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch class"})
		return
	}

	var input ClassUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Trainer != nil {
		updates["trainer"] = *input.Trainer
	}
	if input.Time != nil {
		updates["time"] = *input.Time
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.Capacity != nil {
		updates["capacity"] = *input.Capacity
	}
	if input.Intensity != nil {
		updates["intensity"] = *input.Intensity
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&class).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update class"})
			return
		}
	}
	c.JSON(http.StatusOK, class)
}

func DeleteClass(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class id"})
		return
	}

	if err := config.DB.Delete(&models.Class{}, uint(id)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete class"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
