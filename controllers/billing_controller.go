package controllers

import (
	"net/http"

	"github.com/JJ-Data/Pulse-Flow-Gym-App/middlewares"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/services"

	"github.com/gin-gonic/gin"
)

func ListPayments(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	payments, err := services.ListPayments(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

type CheckoutInput struct {
	PlanID uint   `json:"plan_id" binding:"required"`
	Method string `json:"method" binding:"required"`
}

func Checkout(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, payment, err := services.Checkout(userID, input.PlanID, input.Method)
	if err != nil {
		if err == services.ErrPlanNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"subscription": sub,
		"payment":      payment,
	})
}
