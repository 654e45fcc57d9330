package config

import (
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "healthportal"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", ""),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", ""),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	appEnv := utils.GetEnvString("APP_ENV", "development")
	return &InternalConfig{
		App: App{
			Name:                       utils.GetEnvString("APP_NAME", "healthportal-service"),
			Env:                        appEnv,
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			FrontendDomain:             utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 12),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			AIRequestTimeoutInSeconds:  utils.GetEnvInt("APP_AI_REQUEST_TIMEOUT_IN_SECONDS", 60),
			AIQuotaPerMinute:           utils.GetEnvInt("APP_AI_QUOTA_PER_MINUTE", 20),
			PasswordHashAlgorithm:      utils.GetEnvString("APP_PASSWORD_HASH_ALGORITHM", constvars.PasswordHashAlgorithmSHA256),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "healthportal-dev-secret"),
		},
		Session: AppSession{
			Store:          utils.GetEnvString("APP_SESSION_STORE", constvars.StorageDriverMemory),
			MaxAgeInHours:  utils.GetEnvInt("APP_SESSION_MAX_AGE_IN_HOURS", int(constvars.SessionMaxAge.Hours())),
			CookieSecure:   appEnv == "production",
			CookieSameSite: utils.GetEnvString("APP_SESSION_COOKIE_SAME_SITE", "lax"),
		},
		Storage: AppStorage{
			Driver:           utils.GetEnvString("APP_STORAGE_DRIVER", constvars.StorageDriverMemory),
			AppointmentStore: utils.GetEnvString("APP_APPOINTMENT_STORE", constvars.StorageDriverMemory),
		},
		GenerativeAI: AppGenerativeAI{
			GeminiAPIKey:         utils.GetEnvString("GOOGLE_GEMINI_API_KEY", ""),
			PrescriptionModel:    utils.GetEnvString("GEMINI_PRESCRIPTION_MODEL", constvars.DefaultGeminiProModel),
			SymptomModel:         utils.GetEnvString("GEMINI_SYMPTOM_MODEL", constvars.DefaultGeminiProModel),
			TranslationModel:     utils.GetEnvString("GEMINI_TRANSLATION_MODEL", constvars.DefaultTranslatorModel),
			Temperature:          utils.GetEnvFloat("GEMINI_TEMPERATURE", 0.2),
			MaxRequestsPerSecond: utils.GetEnvFloat("GEMINI_MAX_REQUESTS_PER_SECOND", 5),
			BurstRequests:        utils.GetEnvInt("GEMINI_BURST_REQUESTS", 5),
			MaxImageSizeInByte:   utils.GetEnvInt64("APP_PRESCRIPTION_MAX_IMAGE_SIZE_IN_BYTE", constvars.MaxPrescriptionImageSize),
		},
		Vertex: AppVertex{
			ProjectID:   utils.GetEnvString("GOOGLE_PROJECT_ID", ""),
			Location:    utils.GetEnvString("GOOGLE_VERTEX_LOCATION", constvars.DefaultVertexLocation),
			Model:       utils.GetEnvString("GOOGLE_VERTEX_MODEL", constvars.DefaultTranslatorModel),
			ClientEmail: utils.GetEnvString("GOOGLE_CLIENT_EMAIL", ""),
			PrivateKey:  NormalizePrivateKey(utils.GetEnvString("GOOGLE_PRIVATE_KEY", "")),
		},
		Translation: AppTranslation{
			CacheTTLInHours: utils.GetEnvInt("TRANSLATION_CACHE_TTL_IN_HOURS", 24),
		},
		GoogleAuth: AppGoogleAuth{
			ClientID: utils.GetEnvStringWithAlias("GOOGLE_CLIENT_ID", "NEXT_PUBLIC_GOOGLE_CLIENT_ID", ""),
		},
		News: AppNews{
			APIKey:               utils.GetEnvString("NEWS_API_KEY", ""),
			BaseUrl:              utils.GetEnvString("NEWS_API_BASE_URL", "https://newsapi.org"),
			CacheTTLInMinutes:    utils.GetEnvInt("NEWS_CACHE_TTL_IN_MINUTES", 15),
			HTTPTimeoutInSeconds: utils.GetEnvInt("NEWS_HTTP_TIMEOUT_IN_SECONDS", 10),
		},
		Minio: AppMinio{
			PrescriptionBucketName: utils.GetEnvString("APP_MINIO_PRESCRIPTION_BUCKET_NAME", ""),
		},
		RabbitMQ: AppRabbitMQ{
			AppointmentQueue: utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_QUEUE", ""),
		},
	}
}

// NormalizePrivateKey turns escaped newlines from a single-line env value into real ones.
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
