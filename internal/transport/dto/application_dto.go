package dto

import (
	"github.com/google/uuid"
)

// ApplyRequest defines the structure for applying to a job. UserID is set
// internally from the auth context; ResumePath is filled by the upload
// middleware when a resume file accompanies the request.
type ApplyRequest struct {
	JobID          uuid.UUID `json:"jobId" form:"jobId" validate:"required"`
	UserTechSkills []string  `json:"userTechSkills" form:"userTechSkills" validate:"required,min=1,dive,max=100"`
	UserSoftSkills []string  `json:"userSoftSkills" form:"userSoftSkills" validate:"omitempty,dive,max=100"`
	UserID         uuid.UUID `json:"-"`
	ResumePath     *string   `json:"-"`
}
