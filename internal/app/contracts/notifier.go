package contracts

import (
	"context"
	"healthportal-service/internal/app/models"
)

type AppointmentNotifier interface {
	PublishAppointmentBooked(ctx context.Context, event *models.AppointmentBookedEvent) error
}
