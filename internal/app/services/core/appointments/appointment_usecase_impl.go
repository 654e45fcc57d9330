package appointments

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/dto/responses"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentStore contracts.AppointmentStore
	DoctorRepository contracts.DoctorRepository
	Notifier         contracts.AppointmentNotifier
	Log              *zap.Logger
	now              func() time.Time
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

// NewAppointmentUsecase accepts a nil notifier when no broker is configured.
func NewAppointmentUsecase(
	appointmentStore contracts.AppointmentStore,
	doctorRepository contracts.DoctorRepository,
	notifier contracts.AppointmentNotifier,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentStore: appointmentStore,
			DoctorRepository: doctorRepository,
			Notifier:         notifier,
			Log:              logger,
			now:              time.Now,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, ownerID string) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerIDKey, ownerID),
	)

	list, err := uc.AppointmentStore.List(ctx, ownerID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListAppointments error listing appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if list == nil {
		list = make([]models.Appointment, 0)
	}
	return list, nil
}

func (uc *appointmentUsecase) AddAppointment(ctx context.Context, ownerID string, request *requests.CreateAppointment) (*responses.AppointmentMutation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.AddAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerIDKey, ownerID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.AddAppointment error finding doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, request.DoctorID)
	}

	appointment := models.Appointment{
		ID:        utils.GenerateAppointmentID(),
		OwnerID:   ownerID,
		Doctor:    *doctor,
		Date:      request.Date,
		Time:      request.Time,
		CreatedAt: uc.now().UTC(),
	}

	updated, err := uc.AppointmentStore.Mutate(ctx, ownerID, func(current []models.Appointment) ([]models.Appointment, error) {
		return append(current, appointment), nil
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.AddAppointment error saving appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishBooked(ctx, &appointment)

	uc.Log.Info("appointmentUsecase.AddAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return &responses.AppointmentMutation{
		Appointment:  &appointment,
		Appointments: updated,
	}, nil
}

func (uc *appointmentUsecase) RemoveAppointment(ctx context.Context, ownerID string, index int) (*responses.AppointmentMutation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.RemoveAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerIDKey, ownerID),
		zap.Int(constvars.LoggingIndexKey, index),
	)

	var removed models.Appointment
	updated, err := uc.AppointmentStore.Mutate(ctx, ownerID, func(current []models.Appointment) ([]models.Appointment, error) {
		if index < 0 || index >= len(current) {
			return nil, exceptions.ErrAppointmentIndexOutOfRange(nil, index, len(current))
		}
		removed = current[index]
		return append(current[:index], current[index+1:]...), nil
	})
	if err != nil {
		uc.Log.Info("appointmentUsecase.RemoveAppointment failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.RemoveAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, removed.ID),
	)
	return &responses.AppointmentMutation{
		Appointment:  &removed,
		Appointments: updated,
	}, nil
}

func (uc *appointmentUsecase) RemoveAppointmentByID(ctx context.Context, ownerID, appointmentID string) (*responses.AppointmentMutation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.RemoveAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerIDKey, ownerID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	var removed models.Appointment
	updated, err := uc.AppointmentStore.Mutate(ctx, ownerID, func(current []models.Appointment) ([]models.Appointment, error) {
		for i, appointment := range current {
			if appointment.ID == appointmentID {
				removed = appointment
				return append(current[:i], current[i+1:]...), nil
			}
		}
		return nil, exceptions.ErrAppointmentNotFound(nil, appointmentID)
	})
	if err != nil {
		uc.Log.Info("appointmentUsecase.RemoveAppointmentByID failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.AppointmentMutation{
		Appointment:  &removed,
		Appointments: updated,
	}, nil
}

// publishBooked never fails the booking; a broker outage only costs the notification.
func (uc *appointmentUsecase) publishBooked(ctx context.Context, appointment *models.Appointment) {
	if uc.Notifier == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	event := &models.AppointmentBookedEvent{
		Event:         constvars.EventAppointmentBooked,
		AppointmentID: appointment.ID,
		OwnerID:       appointment.OwnerID,
		DoctorID:      appointment.Doctor.ID,
		DoctorName:    appointment.Doctor.Name,
		Date:          appointment.Date,
		Time:          appointment.Time,
		BookedAt:      appointment.CreatedAt,
	}
	err := uc.Notifier.PublishAppointmentBooked(ctx, event)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.AddAppointment error publishing booking event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}
