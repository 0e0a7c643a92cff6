package model

import "strings"

// Role describes operator privilege level.
type Role string

const (
	RoleOperator   Role = "Operator"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
)

// ParseRole maps a stored role label to Role, defaulting to RoleOperator.
func ParseRole(value string) Role {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "superadmin":
		return RoleSuperAdmin
	case "admin":
		return RoleAdmin
	default:
		return RoleOperator
	}
}

// Rank orders roles by privilege.
func (r Role) Rank() int {
	switch r {
	case RoleSuperAdmin:
		return 2
	case RoleAdmin:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r has at least the privileges of other.
func (r Role) AtLeast(other Role) bool {
	return r.Rank() >= other.Rank()
}

// Privileged reports whether role may see and edit everything.
func (r Role) Privileged() bool {
	return r.AtLeast(RoleAdmin)
}

// Operator is a staff member working with customers.
type Operator struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Phone           string `json:"phone"`
	Role            Role   `json:"role"`
	Password        string `json:"-"`
	Address         string `json:"address,omitempty"`
	ProfileComplete bool   `json:"profileComplete"`
}

// FullName joins name and surname.
func (o Operator) FullName() string {
	return strings.TrimSpace(o.Name + " " + o.Surname)
}
