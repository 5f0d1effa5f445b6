package routes

import (
	"job-board-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCompanyRoutes registers all routes related to companies
func RegisterCompanyRoutes(router *gin.Engine, companyHandler handlers.CompanyHandlerInterface, authMiddleware gin.HandlerFunc) {
	company := router.Group("/company")
	company.Use(authMiddleware) // Apply JWT authentication middleware to all company routes
	{
		company.GET("/search", companyHandler.SearchCompanies)
		company.POST("/add", companyHandler.AddCompany)
		company.GET("/applications/:id", companyHandler.ListApplications)
		company.PATCH("/update/:id", companyHandler.UpdateCompany)
		company.DELETE("/delete/:id", companyHandler.DeleteCompany)
		company.GET("/:id", companyHandler.GetCompany)
	}
}
