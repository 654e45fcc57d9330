package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccessMessage       = "Login successful!"
	RegisterSuccessMessage    = "Registration successful!"
	LogoutSuccessMessage      = "successfully logout"
	GetSessionSuccessMessage  = "get session successfully"
	GoogleLoginSuccessMessage = "Google login successful!"
	DashboardSuccessMessage   = "get dashboard successfully"
	AuthPageAvailableMessage  = "sign in or register to continue"
	HealthCheckSuccessMessage = "service is healthy"

	// Doctor messages
	GetDoctorsSuccessMessage        = "get doctors successfully"
	GetDoctorSuccessMessage         = "get doctor successfully"
	GetSpecialitiesSuccessMessage   = "get specialities successfully"
	GetRelatedDoctorsSuccessMessage = "get related doctors successfully"

	// Appointment messages
	GetAppointmentsSuccessMessage   = "get appointments successfully"
	CreateAppointmentSuccessMessage = "appointment booked successfully"
	DeleteAppointmentSuccessMessage = "appointment cancelled successfully"

	// AI messages
	PrescriptionScanSuccessMessage = "prescription processed successfully"
	SymptomAnalysisSuccessMessage  = "symptoms analyzed successfully"
	TranslateSuccessMessage        = "text translated successfully"
	GetUITranslationsMessage       = "get ui translations successfully"
	GetLanguagesSuccessMessage     = "get languages successfully"

	// News messages
	GetNewsSuccessMessage = "get news successfully"
)
