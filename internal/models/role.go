package models

// Role is the resolved access tier of an authenticated user.
type Role int

const (
	RoleBuyer Role = iota
	RoleSeller
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleSeller:
		return "seller"
	default:
		return "buyer"
	}
}

// RoleFromString maps the stored role field to a Role. Anything that is
// not exactly "admin" or "seller" resolves to buyer, so every user has
// a role.
func RoleFromString(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "seller":
		return RoleSeller
	default:
		return RoleBuyer
	}
}
