package models

// Role is the closed set of account roles understood by the API.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RoleNurse   Role = "nurse"
	RolePatient Role = "patient"
)

// Roles lists every valid role, for boundary validation.
var Roles = []Role{RoleAdmin, RoleDoctor, RoleNurse, RolePatient}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Covers reports whether a caller holding r satisfies a handler that
// requires the given role. Admins satisfy every requirement.
func (r Role) Covers(required Role) bool {
	return r == required || r == RoleAdmin
}
