package dto

import (
	"job-board-api/internal/models"

	"github.com/google/uuid"
)

// CreateJobRequest defines the structure for adding a job posting.
// CompanyID comes from the URL path, AddedBy from the auth context.
type CreateJobRequest struct {
	JobTitle        string                `json:"jobTitle" validate:"required,max=200"`
	JobLocation     models.JobLocation    `json:"jobLocation" validate:"required,oneof=onsite remotely hybrid"`
	WorkingTime     models.WorkingTime    `json:"workingTime" validate:"required,oneof=part-time full-time"`
	SeniorityLevel  models.SeniorityLevel `json:"seniorityLevel" validate:"required,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  string                `json:"jobDescription" validate:"omitempty,max=5000"`
	TechnicalSkills string                `json:"technicalSkills" validate:"omitempty,max=2000"`
	SoftSkills      string                `json:"softSkills" validate:"omitempty,max=2000"`
	CompanyID       uuid.UUID             `json:"-"`
	AddedBy         uuid.UUID             `json:"-"`
}

// UpdateJobRequest defines the structure for a partial job update.
type UpdateJobRequest struct {
	ID              uuid.UUID              `json:"-" validate:"required"`
	JobTitle        *string                `json:"jobTitle,omitempty" validate:"omitempty,max=200"`
	JobLocation     *models.JobLocation    `json:"jobLocation,omitempty" validate:"omitempty,oneof=onsite remotely hybrid"`
	WorkingTime     *models.WorkingTime    `json:"workingTime,omitempty" validate:"omitempty,oneof=part-time full-time"`
	SeniorityLevel  *models.SeniorityLevel `json:"seniorityLevel,omitempty" validate:"omitempty,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  *string                `json:"jobDescription,omitempty" validate:"omitempty,max=5000"`
	TechnicalSkills *string                `json:"technicalSkills,omitempty" validate:"omitempty,max=2000"`
	SoftSkills      *string                `json:"softSkills,omitempty" validate:"omitempty,max=2000"`
}

// SearchJobsRequest carries the optional filter dimensions for /job/search.
// Every supplied dimension contributes an AND-ed constraint; none supplied
// returns all jobs. TechnicalSkills is a comma-separated candidate list.
type SearchJobsRequest struct {
	WorkingTime     *models.WorkingTime    `form:"workingTime" validate:"omitempty,oneof=part-time full-time"`
	JobLocation     *models.JobLocation    `form:"jobLocation" validate:"omitempty,oneof=onsite remotely hybrid"`
	SeniorityLevel  *models.SeniorityLevel `form:"seniorityLevel" validate:"omitempty,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobTitle        *string                `form:"jobTitle"`
	TechnicalSkills *string                `form:"technicalSkills"`
}
