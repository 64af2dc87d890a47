package routes

import (
	"github.com/JJ-Data/Pulse-Flow-Gym-App/controllers"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/middlewares"
	"github.com/JJ-Data/Pulse-Flow-Gym-App/models"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Use(middlewares.RateLimit(5, 10))
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}
	api.GET("/classes", controllers.ListClasses)
	api.GET("/announcements", controllers.ListAnnouncements)
	api.GET("/plans", controllers.ListActivePlans)

	// Authenticated member routes (any role)
	member := api.Group("")
	member.Use(middlewares.AuthMiddleware())
	{
		member.GET("/user/profile", controllers.GetProfile)
		member.PUT("/user/profile", controllers.UpdateProfile)
		member.POST("/user/profile/photo", controllers.UploadProfilePhoto)

		member.GET("/streak", controllers.GetStreak)
		member.POST("/streak", controllers.CheckIn)

		member.POST("/bookings", controllers.CreateBooking)
		member.GET("/bookings", controllers.ListBookings)
		member.PUT("/bookings/:id/cancel", controllers.CancelBooking)

		member.POST("/checkout", controllers.Checkout)
		member.GET("/billing", controllers.ListPayments)
		member.GET("/dashboard", controllers.GetDashboard)

		member.POST("/feedback", controllers.SubmitFeedback)
	}

	// Admin routes: role is enforced once here, never inside handlers.
	admin := api.Group("")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin))
	{
		admin.POST("/classes", controllers.CreateClass)
		admin.PUT("/classes/:id", controllers.UpdateClass)
		admin.DELETE("/classes/:id", controllers.DeleteClass)

		admin.GET("/feedback", controllers.ListFeedback)

		admin.GET("/admin/users", controllers.ListUsers)
		admin.DELETE("/admin/users/:id", controllers.DeleteUser)

		admin.GET("/admin/plans", controllers.ListPlans)
		admin.POST("/admin/plans", controllers.CreatePlan)
		admin.PUT("/admin/plans/:id", controllers.UpdatePlan)
		admin.DELETE("/admin/plans/:id", controllers.DeletePlan)

		admin.POST("/admin/announcements", controllers.CreateAnnouncement)

		admin.GET("/admin/dashboard", controllers.GetAdminDashboard)
	}

	return r
}
