package contracts

import (
	"context"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/dto/requests"
)

type SymptomUsecase interface {
	AnalyzeSymptoms(ctx context.Context, request *requests.AnalyzeSymptoms) (*models.SymptomAnalysis, error)
}
