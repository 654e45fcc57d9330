package requests

type CreateAppointment struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date" validate:"required,appointment_date"`
	Time     string `json:"time" validate:"required,appointment_time"`
}
