package controllers

import (
	"net/http"
	"strconv"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/config"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func planResponse(p *models.GymPlan) gin.H {
	return gin.H{
		"id":       p.ID,
		"name":     p.Name,
		"price":    p.Price,
		"features": p.FeatureList(),
		"duration": p.Duration,
		"active":   p.Active,
	}
}

// ListActivePlans is the public listing used by the checkout page.
func ListActivePlans(c *gin.Context) {
	var plans []models.GymPlan
	if err := config.DB.Where("active = ?", true).Order("price asc").Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
		return
	}

	out := make([]gin.H, 0, len(plans))
	for i := range plans {
		out = append(out, planResponse(&plans[i]))
	}
	c.JSON(http.StatusOK, out)
}

func ListPlans(c *gin.Context) {
	var plans []models.GymPlan
	if err := config.DB.Order("price asc").Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
		return
	}

	out := make([]gin.H, 0, len(plans))
	for i := range plans {
		out = append(out, planResponse(&plans[i]))
	}
	c.JSON(http.StatusOK, out)
}

type PlanInput struct {
	Name     string   `json:"name" binding:"required"`
	Price    float64  `json:"price" binding:"required,min=0"`
	Features []string `json:"features"`
	Duration int      `json:"duration" binding:"required,min=1"`
}

func CreatePlan(c *gin.Context) {
	var input PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := models.GymPlan{
		Name:     input.Name,
		Price:    input.Price,
		Duration: input.Duration,
		Active:   true,
	}
	plan.SetFeatures(input.Features)

	if err := config.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
		return
	}
	c.JSON(http.StatusCreated, planResponse(&plan))
}

type PlanUpdateInput struct {
	Name     *string   `json:"name"`
	Price    *float64  `json:"price"`
	Features *[]string `json:"features"`
	Duration *int      `json:"duration"`
	Active   *bool     `json:"active"`
}

func UpdatePlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	var plan models.GymPlan
	if err := config.DB.First(&plan, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plan"})
		return
	}

	var input PlanUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		plan.Name = *input.Name
	}
	if input.Price != nil {
		plan.Price = *input.Price
	}
	if input.Features != nil {
		plan.SetFeatures(*input.Features)
	}
	if input.Duration != nil {
		plan.Duration = *input.Duration
	}
	if input.Active != nil {
		plan.Active = *input.Active
	}

	if err := config.DB.Save(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}
	c.JSON(http.StatusOK, planResponse(&plan))
}

func DeletePlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan id"})
		return
	}

	if err := config.DB.Delete(&models.GymPlan{}, uint(id)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
