package mongo

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/scope"
)

func TestApplyScope_SuperAdmin_Unmodified(t *testing.T) {
	sc := scope.Context{UserID: "root", Role: domain.RoleSuperAdmin}
	base := bson.M{"status": "sent"}

	got := ApplyScope(sc, base)

	want := bson.M{"status": "sent"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("super_admin filter must pass through unchanged:\n got %v\nwant %v", got, want)
	}
}

func TestApplyScope_ScopedAgency_AddsEquality(t *testing.T) {
	sc := scope.Context{UserID: "u_1", Role: domain.RoleAdmin, AgencyID: "ag_1"}

	got := ApplyScope(sc, bson.M{"status": "sent"})

	if got["agency_id"] != "ag_1" {
		t.Fatalf("expected agency_id clause, got %v", got)
	}
	if got["status"] != "sent" {
		t.Fatal("base clauses must survive scoping")
	}
}

func TestApplyScope_Denied_MatchesNothing(t *testing.T) {
	sc := scope.Context{UserID: "u_1", Role: domain.RoleStaff}

	got := ApplyScope(sc, bson.M{})

	clause, ok := got["_id"].(bson.M)
	if !ok {
		t.Fatalf("denied scope must add an _id clause, got %v", got)
	}
	// _id always exists on a stored document, so this clause is unsatisfiable.
	if exists, ok := clause["$exists"].(bool); !ok || exists {
		t.Fatalf("denied clause must be $exists:false, got %v", clause)
	}
	if _, hasAgency := got["agency_id"]; hasAgency {
		t.Error("denied scope must not fall back to an agency filter")
	}
}

func TestApplyScope_NilBase_Allocates(t *testing.T) {
	sc := scope.Context{UserID: "u_1", Role: domain.RoleAdmin, AgencyID: "ag_1"}

	got := ApplyScope(sc, nil)

	if got == nil || got["agency_id"] != "ag_1" {
		t.Fatalf("nil base must still produce a scoped filter, got %v", got)
	}
}

func TestApplyScope_SuperAdminWithAgency_StillUnscoped(t *testing.T) {
	// A super_admin session that picked an agency is unscoped by role; the
	// role decides, not the session value.
	sc := scope.Context{UserID: "root", Role: domain.RoleSuperAdmin, AgencyID: "ag_1"}

	got := ApplyScope(sc, bson.M{})

	if _, hasAgency := got["agency_id"]; hasAgency {
		t.Fatal("super_admin must remain unscoped even with a session agency")
	}
}
