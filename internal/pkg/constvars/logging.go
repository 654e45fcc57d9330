package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingStatusCodeKey     = "status_code"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingLockStoredValue   = "lock_stored_value"
	LoggingEmailKey          = "email"
	LoggingUserIDKey         = "user_id"
	LoggingRoleKey           = "role"
	LoggingSessionIDKey      = "session_id"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingSpecialityKey     = "speciality"
	LoggingOwnerIDKey        = "owner_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingIndexKey          = "index"
	LoggingProviderKey       = "provider"
	LoggingFeatureKey        = "feature"
	LoggingParseStatusKey    = "parse_status"
	LoggingLanguageKey       = "language"
	LoggingMIMETypeKey       = "mime_type"
	LoggingSizeKey           = "size"
	LoggingObjectNameKey     = "object_name"
	LoggingQueueKey          = "queue"
	LoggingURLKey            = "url"
	LoggingTranslationKey    = "translation_status"
	LoggingCacheHitKey       = "cache_hit"
)
