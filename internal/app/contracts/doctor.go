package contracts

import (
	"context"
	"healthportal-service/internal/app/models"
)

type DoctorRepository interface {
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	List(ctx context.Context) ([]models.Doctor, error)
	Insert(ctx context.Context, doctor *models.Doctor) error
}

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, speciality string) ([]models.Doctor, error)
	GetDoctor(ctx context.Context, doctorID string) (*models.Doctor, error)
	ListSpecialities(ctx context.Context) ([]string, error)
	RelatedDoctors(ctx context.Context, doctorID string) ([]models.Doctor, error)
}
