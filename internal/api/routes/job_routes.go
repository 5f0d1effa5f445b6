package routes

import (
	"job-board-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job postings and applications
func RegisterJobRoutes(router *gin.Engine, jobHandler handlers.JobHandlerInterface, authMiddleware gin.HandlerFunc) {
	job := router.Group("/job")
	job.Use(authMiddleware) // Apply JWT authentication middleware to all job routes
	{
		job.GET("/all", jobHandler.GetAllJobs)
		job.GET("/search", jobHandler.SearchJobs)
		job.GET("/company/:companyName", jobHandler.GetJobsByCompanyName)
		job.POST("/apply", jobHandler.ApplyToJob)
		job.POST("/add/:id", jobHandler.AddJob)
		job.PATCH("/update/:id", jobHandler.UpdateJob)
		job.DELETE("/delete/:id", jobHandler.DeleteJob)
	}
}
