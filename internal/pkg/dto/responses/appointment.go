package responses

import "healthportal-service/internal/app/models"

type AppointmentMutation struct {
	Appointment  *models.Appointment  `json:"appointment,omitempty"`
	Appointments []models.Appointment `json:"appointments"`
}
