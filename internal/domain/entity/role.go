// Package entity contains the core business objects of the project.
package entity

// Role represents the privilege tier a user holds in the system.
type Role string

const (
	// RoleCustomer indicates an ordinary shopper account.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates the elevated, administrative tier.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Satisfies reports whether this role grants everything the required role
// grants. Admin satisfies every tier; callers never compare roles directly,
// so new tiers only need to extend this method.
func (r Role) Satisfies(required Role) bool {
	if r == RoleAdmin {
		return true
	}

	return r == required
}
