package models

// Role is the account type chosen at registration.
type Role string

const (
	RoleRecruiter  Role = "recruiter"
	RoleFreelancer Role = "freelancer"
)

// Roles lists the roles the server accepts, in display order.
var Roles = []Role{RoleRecruiter, RoleFreelancer}

// Valid reports whether r is one of the server role choices.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User is the account record returned alongside a token.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Profile is the payload of the profile endpoint.
type Profile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName joins first and last name, or returns "" when both are empty.
func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
