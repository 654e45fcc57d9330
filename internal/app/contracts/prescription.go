package contracts

import (
	"context"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/dto/requests"
)

type PrescriptionUsecase interface {
	ScanPrescription(ctx context.Context, request *requests.PrescriptionImage) (*models.PrescriptionScan, error)
}
