// internal/api/routes/routes.go
package routes

import (
	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/app"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	//Create handlers
	authHandler := handlers.NewAuthHandler(app.UserService, app.Validator)
	companyHandler := handlers.NewCompanyHandler(app.CompanyService, app.Validator)
	jobHandler := handlers.NewJobHandler(app.JobService, app.ApplicationService, app.ResumeStore, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(router, authHandler, authMiddleware)
	RegisterCompanyRoutes(router, companyHandler, authMiddleware)
	RegisterJobRoutes(router, jobHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)
}
