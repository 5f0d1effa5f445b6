package services

import (
	"fmt"

	"job-board-api/internal/models"

	"github.com/google/uuid"
)

// Identity is the authenticated principal extracted from a verified bearer
// token. It is threaded explicitly into every rule predicate and service
// call; there is no ambient request identity.
type Identity struct {
	ID     uuid.UUID
	Email  string
	Phone  string
	Status models.UserStatus
	Role   models.Role
}

// The rule predicates below are stateless and composed per route; the first
// failure short-circuits before any persistence call, so a denied mutation
// never partially writes.

// RequireRole fails with ErrForbidden unless the identity's role is one of
// the allowed roles.
func RequireRole(identity Identity, allowed ...models.Role) error {
	for _, role := range allowed {
		if identity.Role == role {
			return nil
		}
	}
	return fmt.Errorf("%w: role %s is not permitted for this action", ErrForbidden, identity.Role)
}

// RequireOwnership fails with ErrForbidden unless the identity is the HR
// owner of the company. Ownership is the sole basis for mutating a company
// and its jobs.
func RequireOwnership(identity Identity, company *models.Company) error {
	if company == nil {
		return fmt.Errorf("%w: company", ErrNotFound)
	}
	if company.CompanyHR != identity.ID {
		return fmt.Errorf("%w: only the owning HR account may modify company %s", ErrForbidden, company.ID)
	}
	return nil
}

// RequireApplicantEligibility fails with ErrForbidden for HR identities and
// with ErrNotFound when the target job does not exist.
func RequireApplicantEligibility(identity Identity, job *models.Job) error {
	if identity.Role == models.RoleCompanyHR {
		return fmt.Errorf("%w: HR accounts are not allowed to apply", ErrForbidden)
	}
	if job == nil {
		return fmt.Errorf("%w: job", ErrNotFound)
	}
	return nil
}
