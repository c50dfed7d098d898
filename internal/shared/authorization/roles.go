package authorization

type UserRole string

const (
	// RoleRequester submits tasks against their region's daily slot pool.
	RoleRequester UserRole = "requester"
	// RoleCertifier reviews, completes, rejects, and reactivates any task.
	RoleCertifier UserRole = "certifier"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsCertifier() bool {
	return r == RoleCertifier
}

func (r UserRole) IsRequester() bool {
	return r == RoleRequester
}

func (r UserRole) IsValid() bool {
	return r == RoleRequester || r == RoleCertifier
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleRequester
}
