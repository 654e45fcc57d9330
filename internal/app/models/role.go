package models

import "healthportal-service/internal/pkg/constvars"

type Role string

const (
	RolePatient  Role = constvars.RolePatient
	RoleProvider Role = constvars.RoleProvider
	RoleAdmin    Role = constvars.RoleAdmin
)

func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// DashboardPath is the landing page for a role. Unknown roles land on the patient dashboard.
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return constvars.PagePathAdminDashboard
	case RoleProvider:
		return constvars.PagePathProviderDashboard
	default:
		return constvars.PagePathPatientDashboard
	}
}
