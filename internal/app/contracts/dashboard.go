package contracts

import (
	"context"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	PatientDashboard(ctx context.Context, session *models.Session) (*responses.PatientDashboard, error)
	ProviderDashboard(ctx context.Context, session *models.Session) (*responses.ProviderDashboard, error)
	AdminDashboard(ctx context.Context, session *models.Session) (*responses.AdminDashboard, error)
}
