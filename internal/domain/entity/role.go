// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the marketplace role a user acts under.
type Role string

const (
	// RoleFarmer lists and ships crops.
	RoleFarmer Role = "FARMER"
	// RoleVendor browses the marketplace and buys crops.
	RoleVendor Role = "VENDOR"
	// RoleCommunity is a community agent mediating verification and proxy
	// enrollment for farmers without direct access.
	RoleCommunity Role = "COMMUNITY"
	// RoleUnset marks an account that has not picked a role yet. Such users
	// are routed to role selection, never into a role view.
	RoleUnset Role = ""
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid assignable value. RoleUnset is the
// zero state, not an assignable role.
func (r Role) IsValid() bool {
	switch r {
	case RoleFarmer, RoleVendor, RoleCommunity:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
