package dto

import (
	"github.com/google/uuid"
)

// CreateCompanyRequest defines the structure for registering a company.
// CompanyHR is set internally by the handler from the auth context.
type CreateCompanyRequest struct {
	CompanyName       string    `json:"companyName" validate:"required,max=200"`
	Description       string    `json:"description" validate:"omitempty,max=2000"`
	Industry          string    `json:"industry" validate:"omitempty,max=200"`
	Address           string    `json:"address" validate:"omitempty,max=500"`
	NumberOfEmployees int       `json:"numberOfEmployees" validate:"omitempty,gte=11,lte=20"`
	CompanyEmail      string    `json:"companyEmail" validate:"required,email"`
	CompanyHR         uuid.UUID `json:"-"`
}

// UpdateCompanyRequest defines the structure for a partial company update.
type UpdateCompanyRequest struct {
	ID                uuid.UUID `json:"-" validate:"required"`
	CompanyName       *string   `json:"companyName,omitempty" validate:"omitempty,max=200"`
	Description       *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Industry          *string   `json:"industry,omitempty" validate:"omitempty,max=200"`
	Address           *string   `json:"address,omitempty" validate:"omitempty,max=500"`
	NumberOfEmployees *int      `json:"numberOfEmployees,omitempty" validate:"omitempty,gte=11,lte=20"`
	CompanyEmail      *string   `json:"companyEmail,omitempty" validate:"omitempty,email"`
}

// SearchCompanyRequest carries the name lookup for /company/search.
type SearchCompanyRequest struct {
	Name string `form:"name" validate:"required"`
}
