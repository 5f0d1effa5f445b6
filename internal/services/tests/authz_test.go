package services_test

import (
	"testing"

	"job-board-api/internal/models"
	"job-board-api/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequireRole(t *testing.T) {
	hr := services.Identity{ID: uuid.New(), Role: models.RoleCompanyHR}
	user := services.Identity{ID: uuid.New(), Role: models.RoleUser}

	assert.NoError(t, services.RequireRole(hr, models.RoleCompanyHR))
	assert.NoError(t, services.RequireRole(user, models.RoleUser, models.RoleCompanyHR))
	assert.ErrorIs(t, services.RequireRole(user, models.RoleCompanyHR), services.ErrForbidden)
	assert.ErrorIs(t, services.RequireRole(hr, models.RoleUser), services.ErrForbidden)
}

func TestRequireOwnership(t *testing.T) {
	owner := services.Identity{ID: uuid.New(), Role: models.RoleCompanyHR}
	stranger := services.Identity{ID: uuid.New(), Role: models.RoleCompanyHR}
	company := &models.Company{ID: uuid.New(), CompanyHR: owner.ID}

	assert.NoError(t, services.RequireOwnership(owner, company))
	assert.ErrorIs(t, services.RequireOwnership(stranger, company), services.ErrForbidden)
	assert.ErrorIs(t, services.RequireOwnership(owner, nil), services.ErrNotFound)
}

func TestRequireApplicantEligibility(t *testing.T) {
	hr := services.Identity{ID: uuid.New(), Role: models.RoleCompanyHR}
	user := services.Identity{ID: uuid.New(), Role: models.RoleUser}
	job := &models.Job{ID: uuid.New()}

	assert.NoError(t, services.RequireApplicantEligibility(user, job))
	assert.ErrorIs(t, services.RequireApplicantEligibility(hr, job), services.ErrForbidden)
	assert.ErrorIs(t, services.RequireApplicantEligibility(user, nil), services.ErrNotFound)
}
