package routes

import (
	"job-board-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers all account and credential routes
func RegisterAuthRoutes(router *gin.Engine, authHandler handlers.AuthHandlerInterface, authMiddleware gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		// Public credential routes
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/signin", authHandler.Signin)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)

		// Public recovery routes; reset requires the mailed OTP
		auth.POST("/request-otp", authHandler.RequestOTP)
		auth.POST("/verify-otp", authHandler.VerifyOTP)
		auth.POST("/reset-password", authHandler.ResetPassword)

		// Authenticated account routes
		protected := auth.Group("")
		protected.Use(authMiddleware)
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.GET("/profile/:id", authHandler.GetProfileByID)
			protected.PATCH("/update", authHandler.UpdateAccount)
			protected.DELETE("/delete", authHandler.DeleteAccount)
			protected.PATCH("/password", authHandler.UpdatePassword)
			protected.GET("/recovery/:recoveryEmail", authHandler.ListByRecoveryEmail)
		}
	}
}
