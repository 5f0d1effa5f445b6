// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	Signup(c *gin.Context)
	Signin(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	GetProfile(c *gin.Context)
	GetProfileByID(c *gin.Context)
	UpdateAccount(c *gin.Context)
	DeleteAccount(c *gin.Context)
	UpdatePassword(c *gin.Context)
	ListByRecoveryEmail(c *gin.Context)
	RequestOTP(c *gin.Context)
	VerifyOTP(c *gin.Context)
	ResetPassword(c *gin.Context)
}

// CompanyHandlerInterface defines the methods needed by the company routes.
type CompanyHandlerInterface interface {
	SearchCompanies(c *gin.Context)
	AddCompany(c *gin.Context)
	GetCompany(c *gin.Context)
	UpdateCompany(c *gin.Context)
	DeleteCompany(c *gin.Context)
	ListApplications(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	GetAllJobs(c *gin.Context)
	SearchJobs(c *gin.Context)
	GetJobsByCompanyName(c *gin.Context)
	ApplyToJob(c *gin.Context)
	AddJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ AuthHandlerInterface = (*AuthHandler)(nil)
var _ CompanyHandlerInterface = (*CompanyHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
