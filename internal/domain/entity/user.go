package entity

import "time"

// Coordinates is an optional geographic position attached to a user.
type Coordinates struct {
	Lat float64
	Lng float64
}

// User is the identity record shared by all roles. A user is created at
// signup with RoleUnset, or by a community agent's proxy enrollment with the
// farmer role pre-set and pre-verified. Users are never deleted.
type User struct {
	ID       string // Stable unique identifier.
	Name     string // Display name.
	Phone    string // Primary contact and login identifier.
	Location string // Free-text location, e.g. "Punjab". Optional.

	// Role is immutable once set except through the explicit role-assignment
	// operation.
	Role Role

	Verified              bool // Set by a community agent's verification grant.
	VerificationRequested bool // Set by the farmer's own verification request.

	// Payout fields, filled during profile completion. Optional.
	BankAccount string
	IFSC        string

	// Coords is an optional geocoordinate pair used by the coordinate-based
	// regional affinity check.
	Coords *Coordinates

	// EnrolledBy records the community agent that proxy-registered this user.
	// Empty for self-registered users.
	EnrolledBy string

	// PasswordHash is only populated when the local auth gateway manages the
	// account; remote-auth users never carry credentials here.
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}
