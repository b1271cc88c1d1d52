package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// Error message templates for role-gated routes
const (
	ErrOnlyAdminsCanAccess = "only admins may access %s"
	ErrOnlyStaffCanAccess  = "only admins or cashiers may access %s"
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

var (
	AllRoles = []string{
		RoleAdmin,
		RoleCashier,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
