package contracts

import (
	"context"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/dto/responses"
)

// AppointmentStore keeps one ordered list per owner. Mutate loads the list, hands it
// to fn and persists whatever fn returns, as a single unit.
type AppointmentStore interface {
	List(ctx context.Context, ownerID string) ([]models.Appointment, error)
	Mutate(ctx context.Context, ownerID string, fn func([]models.Appointment) ([]models.Appointment, error)) ([]models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
}

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, ownerID string) ([]models.Appointment, error)
	AddAppointment(ctx context.Context, ownerID string, request *requests.CreateAppointment) (*responses.AppointmentMutation, error)
	RemoveAppointment(ctx context.Context, ownerID string, index int) (*responses.AppointmentMutation, error)
	RemoveAppointmentByID(ctx context.Context, ownerID, appointmentID string) (*responses.AppointmentMutation, error)
}
