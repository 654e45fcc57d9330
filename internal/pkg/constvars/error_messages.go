package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"len":              "must be %s characters long",
	"oneof":            "must be one of [%s]",
	"gte":              "must be greater than or equal to %s",
	"url":              "must be a valid URL",
	"uuid":             "must be a valid UUID",
	"notblank":         "must not be blank",
	"role":             "must be one of [patient, provider, admin]",
	"language_code":    "must be a valid language code such as 'hi' or 'en'",
	"appointment_date": "must be a date in YYYY-MM-DD format",
	"appointment_time": "must be a time in HH:MM format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gte":   true,
}

// Tags whose message is returned without the field name
var TagsWithStandaloneMessage = map[string]bool{
	"appointment_date": true,
	"appointment_time": true,
}

// Error codes for clients to branch on
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeImageMissing        = "IMAGE_MISSING"
	ErrCodeImageTooLarge       = "IMAGE_TOO_LARGE"
	ErrCodeImageInvalidType    = "IMAGE_INVALID_TYPE"
	ErrCodeConfiguration       = "CONFIGURATION_ERROR"
	ErrCodeUpstream            = "UPSTREAM_ERROR"
	ErrCodeQuotaExceeded       = "QUOTA_EXCEEDED"
	ErrCodeDeadlineExceeded    = "DEADLINE_EXCEEDED"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeIndexOutOfRange     = "INDEX_OUT_OF_RANGE"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeInvalidPassword     = "INVALID_PASSWORD"
	ErrCodeUserAlreadyExists   = "USER_ALREADY_EXISTS"
	ErrCodeSessionInvalid      = "SESSION_INVALID"
	ErrCodeUnsupportedURL      = "UNSUPPORTED_URL"
	ErrCodeAppointmentNotFound = "APPOINTMENT_NOT_FOUND"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process your request, please try again later"
	ErrClientSomethingWrongWithApplication = "something went wrong, please try again later"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "please sign in to continue"
	ErrClientUserNotFound                  = "User not found. Please register first."
	ErrClientInvalidPassword               = "Invalid password. Please try again."
	ErrClientUserAlreadyExists             = "User already exists with this email."
	ErrClientGoogleLoginFailed             = "Google login failed. Please try again."
	ErrClientNoImageProvided               = "No image provided"
	ErrClientImageTooLarge                 = "Image size must be less than 10MB"
	ErrClientInvalidImageType              = "Invalid image type. Please upload a JPEG, PNG, or WebP image"
	ErrClientServerConfiguration           = "Server configuration error"
	ErrClientPrescriptionProcessingFailed  = "Failed to process image with Gemini API"
	ErrClientSymptomAnalysisFailed         = "An error occurred while analyzing symptoms. Please try again later."
	ErrClientSymptomsRequired              = "Please describe your symptoms"
	ErrClientTranslationInputRequired      = "Text and target language are required"
	ErrClientTranslationFailed             = "Translation failed"
	ErrClientNewsFetchFailed               = "Failed to fetch news"
	ErrClientImageURLRequired              = "Image URL is required"
	ErrClientImageURLUnsupported           = "Image URL must use http or https"
	ErrClientImageFetchFailed              = "Failed to fetch image"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientAppointmentIndexOutOfRange    = "Appointment index is out of range"
	ErrClientAIQuotaExceeded               = "Too many AI requests, please slow down"
	ErrClientAppointmentBusy               = "Your appointments are being updated, please retry"
)

// Error messages for developers
const (
	ErrDevValidationFailed            = "validation failed"
	ErrDevInvalidInput                = "invalid input"
	ErrDevCannotParseJSON             = "cannot parse JSON body"
	ErrDevCannotMarshalJSON           = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm    = "cannot parse multipart form"
	ErrDevURLParamValidationFailed    = "url param %s validation failed"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded"
	ErrDevUserNotExists               = "user does not exist"
	ErrDevInvalidCredentials          = "password digest mismatch"
	ErrDevEmailAlreadyExists          = "email already exists"
	ErrDevFailedToHashPassword        = "failed to hash password"
	ErrDevUnsupportedHashAlgorithm    = "unsupported password hash algorithm %s"
	ErrDevAuthTokenMissing            = "session cookie missing"
	ErrDevAuthTokenInvalid            = "session token invalid"
	ErrDevAuthSigningMethod           = "unexpected signing method"
	ErrDevAuthGenerateToken           = "failed to generate session token"
	ErrDevSessionNotFound             = "session not found or expired"
	ErrDevRoleTypeDoesntMatch         = "session role does not match route roles"
	ErrDevGoogleClientIDMissing       = "google client id is not configured"
	ErrDevGoogleTokenInvalid          = "google id token failed verification"
	ErrDevImageMissing                = "multipart field image is missing"
	ErrDevImageTooLarge               = "image exceeds maximum size"
	ErrDevImageInvalidType            = "image mime type %s is not allowed"
	ErrDevGenerativeAIKeyMissing      = "generative ai api key is not configured"
	ErrDevGenerativeAIRequest         = "generative ai request failed"
	ErrDevGenerativeAIEmptyResponse   = "generative ai returned no text"
	ErrDevVertexNotConfigured         = "vertex ai service account is not configured"
	ErrDevNewsAPIKeyMissing           = "news api key is not configured"
	ErrDevNewsUpstream                = "news upstream request failed"
	ErrDevImageProxyUpstream          = "image proxy upstream request failed"
	ErrDevImageProxyScheme            = "image proxy url scheme %s is not allowed"
	ErrDevDoctorNotExists             = "doctor %s does not exist"
	ErrDevAppointmentNotExists        = "appointment %s does not exist"
	ErrDevAppointmentIndexOutOfRange  = "appointment index %d out of range for list of %d"
	ErrDevAppointmentLockNotAcquired  = "appointment list lock not acquired"
	ErrDevAIQuotaExceeded             = "ai quota exceeded"
	ErrDevRedisGet                    = "redis get failed"
	ErrDevRedisSet                    = "redis set failed"
	ErrDevRedisDelete                 = "redis delete failed"
	ErrDevRedisIncrement              = "redis increment failed"
	ErrDevRedisUnlock                 = "redis unlock failed"
	ErrDevDBFailedToFindDocument      = "failed to find document"
	ErrDevDBFailedToInsertDocument    = "failed to insert document"
	ErrDevDBFailedToCountDocuments    = "failed to count documents"
	ErrDevMinioFailedToUploadObject   = "failed to upload object to minio"
	ErrDevRabbitMQFailedToPublish     = "failed to publish message to rabbitmq"
	ErrDevSomethingWrongWithTheSystem = "unexpected system error"
)
