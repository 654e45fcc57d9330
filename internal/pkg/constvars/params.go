package constvars

const (
	URLParamDoctorID         = "doctor_id"
	URLParamAppointmentIndex = "index"
	URLParamAppointmentID    = "appointment_id"
)

const (
	URLQueryParamSpeciality = "speciality"
	URLQueryParamLanguage   = "lang"
	URLQueryParamURL        = "url"
)

const (
	FormFieldImage = "image"
)
