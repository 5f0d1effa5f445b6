package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"job-board-api/internal/api/middleware"
	"job-board-api/internal/files"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobHandler holds dependencies for job posting and application operations.
type JobHandler struct {
	jobService services.JobService
	appService services.ApplicationService
	resumes    *files.ResumeStore
	validator  *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService services.JobService, appService services.ApplicationService,
	resumes *files.ResumeStore, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		appService: appService,
		resumes:    resumes,
		validator:  validate,
	}
}

// GetAllJobs godoc
//	@Summary		List all jobs
//	@Description	Returns every job posting with its full company attached.
//	@Tags			job
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}	"All jobs"
//	@Router			/job/all [get]
//	@Security		BearerAuth
func (h *JobHandler) GetAllJobs(c *gin.Context) {
	jobs, err := h.jobService.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "GetAllJobs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "jobs": jobs})
}

// SearchJobs godoc
//	@Summary		Filter jobs
//	@Description	Filters jobs on any combination of working time, location, seniority, title and skills. All supplied dimensions must match.
//	@Tags			job
//	@Produce		json
//	@Param			workingTime		query		string	false	"part-time or full-time"
//	@Param			jobLocation		query		string	false	"onsite, remotely or hybrid"
//	@Param			seniorityLevel	query		string	false	"Junior, Mid-Level, Senior, Team-Lead or CTO"
//	@Param			jobTitle		query		string	false	"Title substring"
//	@Param			technicalSkills	query		string	false	"Comma-separated skill candidates"
//	@Success		200				{object}	map[string]interface{}	"Matching jobs"
//	@Failure		400				{object}	map[string]string	"Invalid filter value"
//	@Router			/job/search [get]
//	@Security		BearerAuth
func (h *JobHandler) SearchJobs(c *gin.Context) {
	var filter dto.SearchJobsRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	jobs, err := h.jobService.Search(c.Request.Context(), &filter)
	if err != nil {
		respondServiceError(c, err, "SearchJobs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "jobs": jobs})
}

// GetJobsByCompanyName godoc
//	@Summary		List a company's jobs by exact name
//	@Description	Returns the jobs posted by the named company with a reduced company view.
//	@Tags			job
//	@Produce		json
//	@Param			companyName	path		string	true	"Exact company name"
//	@Success		200			{object}	map[string]interface{}	"Company jobs"
//	@Failure		404			{object}	map[string]string	"Company unknown or has no jobs"
//	@Router			/job/company/{companyName} [get]
//	@Security		BearerAuth
func (h *JobHandler) GetJobsByCompanyName(c *gin.Context) {
	companyName := c.Param("companyName")
	if strings.TrimSpace(companyName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company name is required"})
		return
	}

	company, jobs, err := h.jobService.ListByCompanyName(c.Request.Context(), companyName)
	if err != nil {
		respondServiceError(c, err, "GetJobsByCompanyName")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "company": company, "jobs": jobs})
}

// ApplyToJob godoc
//	@Summary		Apply to a job
//	@Description	Records an application with a snapshot of the applicant's skills. HR accounts may not apply. Accepts an optional PDF resume as multipart field "resume".
//	@Tags			job
//	@Accept			json
//	@Produce		json
//	@Param			application	body		dto.ApplyRequest	true	"Application data"
//	@Success		201			{object}	map[string]interface{}	"Application created"
//	@Failure		400			{object}	map[string]string	"Bad Request - Invalid input or resume"
//	@Failure		403			{object}	map[string]string	"Forbidden - HR accounts cannot apply"
//	@Failure		404			{object}	map[string]string	"Job not found"
//	@Failure		409			{object}	map[string]string	"Conflict - Already applied"
//	@Router			/job/apply [post]
//	@Security		BearerAuth
func (h *JobHandler) ApplyToJob(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("ApplyToJob: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ApplyRequest
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
			return
		}
		file, err := c.FormFile("resume")
		if err == nil {
			path, err := h.resumes.Save(file)
			if err != nil {
				if errors.Is(err, files.ErrFileTooLarge) || errors.Is(err, files.ErrInvalidFileType) {
					c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				} else {
					log.Printf("ApplyToJob: Error saving resume: %v", err)
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store resume"})
				}
				return
			}
			req.ResumePath = &path
		} else if !errors.Is(err, http.ErrMissingFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume upload: " + err.Error()})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}
	}
	req.UserID = identity.ID

	// The resume is already on disk at this point; discard it when the
	// application is rejected so failed attempts leave no orphan files.
	discardResume := func() {
		if req.ResumePath == nil {
			return
		}
		if err := h.resumes.Remove(*req.ResumePath); err != nil {
			log.Printf("ApplyToJob: Error removing resume for rejected application: %v", err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		discardResume()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	application, err := h.appService.Apply(c.Request.Context(), identity, &req)
	if err != nil {
		discardResume()
		respondServiceError(c, err, "ApplyToJob")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Success", "application": application})
}

// AddJob godoc
//	@Summary		Post a job
//	@Description	Creates a job posting under the company in the path. Only the owning HR account may post.
//	@Tags			job
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"Company ID"	Format(uuid)
//	@Param			job	body		dto.CreateJobRequest	true	"Job to create"
//	@Success		201	{object}	map[string]interface{}	"Job created"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not the owner"
//	@Failure		404	{object}	map[string]string	"Company not found"
//	@Router			/job/add/{id} [post]
//	@Security		BearerAuth
func (h *JobHandler) AddJob(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("AddJob: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID format"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.CompanyID = companyID
	req.AddedBy = identity.ID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err, "AddJob")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Success", "job": job})
}

// UpdateJob godoc
//	@Summary		Update a job
//	@Description	Partially updates a job posting. Only the owning HR account may update.
//	@Tags			job
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"Job ID"	Format(uuid)
//	@Param			job	body		dto.UpdateJobRequest	true	"Fields to update"
//	@Success		200	{object}	map[string]interface{}	"Updated job"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not the owner"
//	@Failure		404	{object}	map[string]string	"Job not found"
//	@Router			/job/update/{id} [patch]
//	@Security		BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("UpdateJob: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err, "UpdateJob")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "job": job})
}

// DeleteJob godoc
//	@Summary		Delete a job
//	@Description	Deletes a job posting and its applications. Only the owning HR account may delete.
//	@Tags			job
//	@Produce		json
//	@Param			id	path		string	true	"Job ID"	Format(uuid)
//	@Success		200	{object}	map[string]interface{}	"Deleted job"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not the owner"
//	@Failure		404	{object}	map[string]string	"Job not found"
//	@Router			/job/delete/{id} [delete]
//	@Security		BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("DeleteJob: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	job, err := h.jobService.Delete(c.Request.Context(), identity, id)
	if err != nil {
		respondServiceError(c, err, "DeleteJob")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "job": job})
}
