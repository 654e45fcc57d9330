package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HLTH_SVC_"
)

const (
	RolePatient  = "patient"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

const (
	AuthProviderPassword = "password"
	AuthProviderGoogle   = "google"
)

const (
	PasswordHashAlgorithmSHA256 = "sha256"
	PasswordHashAlgorithmBcrypt = "bcrypt"
)

const (
	StorageDriverMemory = "memory"
	StorageDriverMongo  = "mongo"
	StorageDriverRedis  = "redis"
)

const (
	SessionCookieName = "user-session"
	SessionMaxAge     = 7 * 24 * time.Hour
	SessionJWTClaimID = "session_id"
)

const (
	RedisKeySessionPrefix       = "session:"
	RedisKeyAppointmentsPrefix  = "appointments:"
	RedisKeyAppointmentsLock    = "lock:appointments:"
	RedisKeyTranslationPrefix   = "translation:"
	RedisKeyNewsHeadlines       = "news:healthcare"
	RedisKeyAIQuotaPrefix       = "quota:ai:"
	AppointmentLockExpiration   = 5 * time.Second
	AppointmentLockMaxRetries   = 20
	AppointmentLockRetryBackoff = 50 * time.Millisecond
)

const (
	PagePathAuth              = "/auth"
	PagePathPatientDashboard  = "/patient/dashboard"
	PagePathPatientAppts      = "/patient/appointments"
	PagePathProviderDashboard = "/provider/dashboard"
	PagePathAdminDashboard    = "/admin/dashboard"
)

var ProtectedPagePrefixes = []string{
	PagePathPatientDashboard,
	PagePathPatientAppts,
	PagePathProviderDashboard,
	PagePathAdminDashboard,
}

const (
	MaxPrescriptionImageSize = 10 * 1024 * 1024
	PrescriptionObjectPrefix = "prescriptions"
)

var AllowedPrescriptionImageTypes = map[string]string{
	MIMEImageJPEG: ".jpg",
	MIMEImagePNG:  ".png",
	MIMEImageWebP: ".webp",
}

const (
	AIFeaturePrescription  = "prescription_ocr"
	AIFeatureSymptoms      = "symptom_checker"
	AIFeatureTranslation   = "translation"
	AIOutcomeSuccess       = "success"
	AIOutcomeError         = "error"
	AIProviderGemini       = "gemini"
	AIProviderVertex       = "vertex"
	DefaultGeminiProModel  = "gemini-1.5-pro"
	DefaultTranslatorModel = "gemini-pro"
	DefaultVertexLocation  = "us-central1"
)

const (
	SeverityLow       = "low"
	SeverityMedium    = "medium"
	SeverityHigh      = "high"
	SeverityEmergency = "emergency"

	DefaultMedicalDisclaimer = "This is not medical advice. Please consult a healthcare professional."
)

const (
	ParseStatusParsed   = "parsed"
	ParseStatusFallback = "fallback"
)

const (
	TranslationStatusOK       = "ok"
	TranslationStatusDegraded = "degraded"
	TranslationStatusFailed   = "failed"
	TranslationStatusSkipped  = "skipped"
	DefaultLanguageCode       = "en"
)

const (
	EventAppointmentBooked = "appointment.booked"
)

const (
	MongoCollectionUsers   = "users"
	MongoCollectionDoctors = "doctors"
)
