package responses

import "healthportal-service/internal/app/models"

type QuickLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type PatientDashboard struct {
	User                 *models.Session      `json:"user"`
	UpcomingAppointments []models.Appointment `json:"upcomingAppointments"`
	QuickLinks           []QuickLink          `json:"quickLinks"`
}

type ProviderDashboard struct {
	User                   *models.Session `json:"user"`
	Doctors                int             `json:"doctors"`
	TodayAppointmentsCount int             `json:"todayAppointmentsCount"`
}

type AdminDashboard struct {
	User              *models.Session `json:"user"`
	UsersByRole       map[string]int  `json:"usersByRole"`
	DoctorsCount      int             `json:"doctorsCount"`
	AppointmentsCount int             `json:"appointmentsCount"`
}

type AuthPage struct {
	LoginEndpoint    string `json:"loginEndpoint"`
	RegisterEndpoint string `json:"registerEndpoint"`
	GoogleEndpoint   string `json:"googleEndpoint"`
}
