package handlers

import (
	"log"
	"net/http"

	"job-board-api/internal/api/middleware"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CompanyHandler holds dependencies for company operations.
type CompanyHandler struct {
	service   services.CompanyService
	validator *validator.Validate
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(service services.CompanyService, validate *validator.Validate) *CompanyHandler {
	return &CompanyHandler{
		service:   service,
		validator: validate,
	}
}

// SearchCompanies godoc
//	@Summary		Search companies by name
//	@Description	Case-insensitive substring match on company name.
//	@Tags			company
//	@Produce		json
//	@Param			name	query		string	true	"Name fragment"
//	@Success		200		{object}	map[string]interface{}	"Matching companies"
//	@Failure		400		{object}	map[string]string	"Missing name parameter"
//	@Router			/company/search [get]
//	@Security		BearerAuth
func (h *CompanyHandler) SearchCompanies(c *gin.Context) {
	var req dto.SearchCompanyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	companies, err := h.service.Search(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, err, "SearchCompanies")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "companies": companies})
}

// AddCompany godoc
//	@Summary		Register a company
//	@Description	Creates a company owned by the authenticated HR account. Name and email must be unique.
//	@Tags			company
//	@Accept			json
//	@Produce		json
//	@Param			company	body		dto.CreateCompanyRequest	true	"Company to create"
//	@Success		201		{object}	map[string]interface{}	"Company created"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		403		{object}	map[string]string	"Forbidden - Not an HR account"
//	@Failure		409		{object}	map[string]string	"Conflict - Name or email taken"
//	@Router			/company/add [post]
//	@Security		BearerAuth
func (h *CompanyHandler) AddCompany(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("AddCompany: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.CompanyHR = identity.ID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	company, err := h.service.Create(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err, "AddCompany")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Success", "company": company})
}

// GetCompany godoc
//	@Summary		Get a company with its jobs
//	@Description	Returns the company and all jobs it has posted. HR only.
//	@Tags			company
//	@Produce		json
//	@Param			id	path		string	true	"Company ID"	Format(uuid)
//	@Success		200	{object}	map[string]interface{}	"Company and jobs"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not an HR account"
//	@Failure		404	{object}	map[string]string	"Company not found"
//	@Router			/company/{id} [get]
//	@Security		BearerAuth
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("GetCompany: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID format"})
		return
	}

	company, jobs, err := h.service.Get(c.Request.Context(), identity, id)
	if err != nil {
		respondServiceError(c, err, "GetCompany")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "company": company, "jobs": jobs})
}

// UpdateCompany godoc
//	@Summary		Update a company
//	@Description	Partially updates a company. Only the owning HR account may update.
//	@Tags			company
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string	true	"Company ID"	Format(uuid)
//	@Param			company	body		dto.UpdateCompanyRequest	true	"Fields to update"
//	@Success		200		{object}	map[string]interface{}	"Updated company"
//	@Failure		403		{object}	map[string]string	"Forbidden - Not the owner"
//	@Failure		404		{object}	map[string]string	"Company not found"
//	@Failure		409		{object}	map[string]string	"Conflict - Name or email taken"
//	@Router			/company/update/{id} [patch]
//	@Security		BearerAuth
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("UpdateCompany: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID format"})
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	company, err := h.service.Update(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err, "UpdateCompany")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "company": company})
}

// DeleteCompany godoc
//	@Summary		Delete a company
//	@Description	Deletes a company and everything it owns. Only the owning HR account may delete.
//	@Tags			company
//	@Produce		json
//	@Param			id	path		string	true	"Company ID"	Format(uuid)
//	@Success		200	{object}	map[string]interface{}	"Deleted company"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not the owner"
//	@Failure		404	{object}	map[string]string	"Company not found"
//	@Router			/company/delete/{id} [delete]
//	@Security		BearerAuth
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("DeleteCompany: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID format"})
		return
	}

	company, err := h.service.Delete(c.Request.Context(), identity, id)
	if err != nil {
		respondServiceError(c, err, "DeleteCompany")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "company": company})
}

// ListApplications godoc
//	@Summary		List applications for a company's jobs
//	@Description	Returns every application to the company's jobs with applicant contact data. Owner only.
//	@Tags			company
//	@Produce		json
//	@Param			id	path		string	true	"Company ID"	Format(uuid)
//	@Success		200	{object}	map[string]interface{}	"Applications"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not the owner"
//	@Failure		404	{object}	map[string]string	"Company not found"
//	@Router			/company/applications/{id} [get]
//	@Security		BearerAuth
func (h *CompanyHandler) ListApplications(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("ListApplications: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID format"})
		return
	}

	company, applications, err := h.service.ListApplications(c.Request.Context(), identity, id)
	if err != nil {
		respondServiceError(c, err, "ListApplications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "company": company, "applications": applications})
}
