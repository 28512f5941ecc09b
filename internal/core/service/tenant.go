package service

import (
	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// creationAgency returns the tenant id a new record inherits from the scope.
// Denied contexts cannot create records. An unscoped super_admin must name a
// target agency; creating with an empty agency id would produce records
// invisible to every tenant.
func creationAgency(sc scope.Context) (string, error) {
	if sc.Denied() {
		return "", domain.ErrNoTenantAccess
	}
	if sc.AgencyID == "" {
		return "", domain.ErrAgencyRequired
	}
	return sc.AgencyID, nil
}
