package doctors

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/exceptions"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const maxRelatedDoctors = 5

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, speciality string) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecialityKey, speciality),
	)

	doctors, err := uc.DoctorRepository.List(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.ListDoctors error listing doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	speciality = strings.TrimSpace(speciality)
	if speciality == "" {
		return doctors, nil
	}

	filtered := make([]models.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if strings.EqualFold(doctor.Speciality, speciality) {
			filtered = append(filtered, doctor)
		}
	}
	return filtered, nil
}

func (uc *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetDoctor error finding doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}
	return doctor, nil
}

func (uc *doctorUsecase) ListSpecialities(ctx context.Context) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ListSpecialities called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(doctors))
	specialities := make([]string, 0, len(doctors))
	for _, doctor := range doctors {
		if _, ok := seen[doctor.Speciality]; ok {
			continue
		}
		seen[doctor.Speciality] = struct{}{}
		specialities = append(specialities, doctor.Speciality)
	}
	return specialities, nil
}

func (uc *doctorUsecase) RelatedDoctors(ctx context.Context, doctorID string) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.RelatedDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.GetDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	all, err := uc.DoctorRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	related := make([]models.Doctor, 0)
	for _, candidate := range all {
		if candidate.ID == doctor.ID || candidate.Speciality != doctor.Speciality {
			continue
		}
		related = append(related, candidate)
		if len(related) == maxRelatedDoctors {
			break
		}
	}
	return related, nil
}
