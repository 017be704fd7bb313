package domain

import "fmt"

// Role is the coarse back-office role. It picks the default permission
// template, and admins bypass the permission table entirely.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// ParseRole validates a role name.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleManager, RoleStaff:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Status is the member's account status.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// ParseStatus validates a status name.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusActive, StatusInactive:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// DefaultPermissions is the permission map given to a new member that is
// added without an explicit one.
//
//	admin    full_access everywhere
//	manager  write on products, orders, customers, promotions; read on
//	         dashboard, analytics, content, team; no access to settings
//	staff    read on dashboard, products, orders, customers, analytics;
//	         no access elsewhere
func DefaultPermissions(role Role) Permissions {
	switch role {
	case RoleAdmin:
		p := make(Permissions, len(AllSections))
		for _, s := range AllSections {
			p[s] = FullAccess
		}
		return p
	case RoleManager:
		return Permissions{
			SectionDashboard:  Read,
			SectionProducts:   Write,
			SectionOrders:     Write,
			SectionCustomers:  Write,
			SectionAnalytics:  Read,
			SectionPromotions: Write,
			SectionContent:    Read,
			SectionTeam:       Read,
			SectionSettings:   NoAccess,
		}
	default:
		return Permissions{
			SectionDashboard:  Read,
			SectionProducts:   Read,
			SectionOrders:     Read,
			SectionCustomers:  Read,
			SectionAnalytics:  Read,
			SectionPromotions: NoAccess,
			SectionContent:    NoAccess,
			SectionTeam:       NoAccess,
			SectionSettings:   NoAccess,
		}
	}
}
