package mongo

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/agencyops/backoffice/internal/core/scope"
)

// ApplyScope adds the tenant filter for sc to a base query:
//
//   - super_admin: the filter is returned unmodified (sees all agencies).
//   - agency id present: an agency_id equality clause is added.
//   - neither: a clause that can never match is added, guaranteeing zero
//     rows. Absence of a resolvable agency must never widen to "no filter".
//
// The base map is mutated and returned for call-site convenience; pass a
// fresh bson.M per query.
func ApplyScope(sc scope.Context, filter bson.M) bson.M {
	if filter == nil {
		filter = bson.M{}
	}
	if sc.Unscoped() {
		return filter
	}
	if sc.AgencyID != "" {
		filter["agency_id"] = sc.AgencyID
		return filter
	}
	// Fail closed: _id always exists, so this matches nothing.
	filter["_id"] = bson.M{"$exists": false}
	return filter
}
