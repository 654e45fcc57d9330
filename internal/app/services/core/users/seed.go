package users

import (
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/utils"
)

// MockUsers returns the demo accounts every fresh deployment starts with.
func MockUsers() []models.User {
	return []models.User{
		{
			ID:       "admin-1",
			Email:    "admin@example.com",
			Name:     "Admin User",
			Password: utils.HashPasswordSHA256("admin123"),
			Role:     models.RoleAdmin,
			Provider: constvars.AuthProviderPassword,
		},
		{
			ID:       "doctor-1",
			Email:    "doctor@example.com",
			Name:     "Dr. Michael Chen",
			Password: utils.HashPasswordSHA256("doctor123"),
			Role:     models.RoleProvider,
			Provider: constvars.AuthProviderPassword,
		},
		{
			ID:       "patient-1",
			Email:    "patient@example.com",
			Name:     "Sarah Johnson",
			Password: utils.HashPasswordSHA256("patient123"),
			Role:     models.RolePatient,
			Provider: constvars.AuthProviderPassword,
		},
	}
}
