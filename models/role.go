package models

// Role determines which protected operations a principal may perform.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleLecturer Role = "lecturer"
	RoleStudent  Role = "student"
)

// Roles lists every valid role value.
var Roles = []Role{RoleAdmin, RoleLecturer, RoleStudent}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLecturer, RoleStudent:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
