package auth

import "errors"

// Portal roles.
const (
	RoleStudent = "student"
	RoleCompany = "company"
	RoleTPO     = "tpo"
)

// Permissions per role.
var Permissions = map[string][]string{
	RoleTPO: {
		"users:read",
		"companies:write",
		"jobs:verify",
		"jobs:delete",
		"applications:status",
		"analytics:read",
	},
	RoleCompany: {
		"jobs:write:own",
		"jobs:delete:own",
		"applications:read:own",
		"applications:status:own",
	},
	RoleStudent: {
		"profile:write:self",
		"applications:write:self",
		"resumes:write:self",
	},
}

// HasPermission reports whether the role carries the permission.
func HasPermission(role, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// IsTPO reports whether the claims belong to a TPO.
func IsTPO(claims *Claims) bool {
	return claims.Role == RoleTPO
}

// ValidateRole checks role validity.
func ValidateRole(role string) error {
	switch role {
	case RoleStudent, RoleCompany, RoleTPO:
		return nil
	default:
		return errors.New("invalid role")
	}
}
