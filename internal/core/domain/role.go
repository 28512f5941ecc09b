package domain

// Role is the closed set of principal roles.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleStaff      Role = "staff"
)

// roleRank orders roles by privilege. Unknown roles rank below everything.
var roleRank = map[Role]int{
	RoleSuperAdmin: 3,
	RoleAdmin:      2,
	RoleStaff:      1,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Permits reports whether a principal holding r may act as required.
// The hierarchy is super_admin > admin > staff.
func (r Role) Permits(required Role) bool {
	return roleRank[r] >= roleRank[required] && roleRank[r] > 0
}

// IsSuperAdmin reports whether r is the only role exempt from tenant scoping.
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}
