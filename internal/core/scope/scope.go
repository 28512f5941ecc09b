// Package scope resolves the effective agency (tenant) filter for an
// authenticated principal and provides the cache used to avoid repeated
// database lookups.
package scope

import "github.com/agencyops/backoffice/internal/core/domain"

// Principal is the parsed authentication claim: who is asking, with what
// role, and (optionally) which agency the session already resolved.
type Principal struct {
	UserID   string
	Role     domain.Role
	AgencyID string
}

// Context is the tenant-filtering context applied to every scoped query.
//
// Three distinct states exist and callers must not conflate them:
//   - super_admin with no agency id: unscoped, sees all agencies.
//   - non-super-admin with an agency id: scoped to that agency.
//   - non-super-admin with no agency id: denied, must yield zero rows.
type Context struct {
	UserID   string
	Role     domain.Role
	AgencyID string
}

// Unscoped reports whether queries run without any agency filter.
func (c Context) Unscoped() bool {
	return c.Role.IsSuperAdmin()
}

// Denied reports whether the principal has no resolvable agency. Repositories
// must translate this into a filter that matches nothing.
func (c Context) Denied() bool {
	return !c.Role.IsSuperAdmin() && c.AgencyID == ""
}
