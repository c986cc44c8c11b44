package models

type UserRole string

const (
	UserRoleTrainer UserRole = "trainer"
	UserRoleAdmin   UserRole = "admin"
	UserRoleClient  UserRole = "client"
)

// ValidUserRole reports whether the role is one of the known roles.
func ValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleTrainer, UserRoleAdmin, UserRoleClient:
		return true
	default:
		return false
	}
}
