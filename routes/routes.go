package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/onboarding", controllers.CompleteOnboarding)
		user.POST("/devices", controllers.RegisterDevice)
	}

	// Logging routes
	logs := r.Group("/logs")
	logs.Use(middlewares.AuthMiddleware())
	{
		logs.POST("/moments", controllers.LogMoment)
		logs.GET("/moments", controllers.GetMoments)
		logs.DELETE("/moments/:id", controllers.DeleteMoment)
		logs.POST("/symptoms", controllers.LogSymptom)
		logs.GET("/symptoms", controllers.GetSymptomLogs)
		logs.POST("/meals", controllers.LogMeal)
		logs.GET("/meals", controllers.GetMeals)
		logs.DELETE("/meals/:id", controllers.DeleteMeal)
	}

	// Analytics routes
	insights := r.Group("/insights")
	insights.Use(middlewares.AuthMiddleware())
	{
		insights.GET("/score", controllers.GetHealthScore)
		insights.GET("/alerts", controllers.GetMedicalAlerts)
		insights.GET("/alerts/history", controllers.GetAlertHistory)
		insights.POST("/alerts/dismiss", controllers.DismissAlert)
		insights.GET("/streak", controllers.GetStreak)
		insights.GET("/triggers", controllers.GetTriggers)
		insights.GET("/triggers/combinations", controllers.GetCombinationTriggers)
		insights.GET("/triggers/potential", controllers.GetPotentialTriggers)
		insights.POST("/triggers/feedback", controllers.RecordTriggerFeedback)
		insights.GET("/stream", controllers.AlertStream)
	}

	return r
}
