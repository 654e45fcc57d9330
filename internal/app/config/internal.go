package config

type InternalConfig struct {
	App          App             `mapstructure:"app"`
	JWT          AppJWT          `mapstructure:"jwt"`
	Session      AppSession      `mapstructure:"session"`
	Storage      AppStorage      `mapstructure:"storage"`
	GenerativeAI AppGenerativeAI `mapstructure:"generative_ai"`
	Vertex       AppVertex       `mapstructure:"vertex"`
	Translation  AppTranslation  `mapstructure:"translation"`
	GoogleAuth   AppGoogleAuth   `mapstructure:"google_auth"`
	News         AppNews         `mapstructure:"news"`
	Minio        AppMinio        `mapstructure:"minio"`
	RabbitMQ     AppRabbitMQ     `mapstructure:"rabbitmq"`
}

type App struct {
	Name                       string `mapstructure:"name"`
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	FrontendDomain             string `mapstructure:"frontend_domain"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	AIRequestTimeoutInSeconds  int    `mapstructure:"ai_request_timeout_in_seconds"`
	AIQuotaPerMinute           int    `mapstructure:"ai_quota_per_minute"`
	PasswordHashAlgorithm      string `mapstructure:"password_hash_algorithm"`
}

type AppJWT struct {
	Secret string `mapstructure:"secret"`
}

type AppSession struct {
	Store          string `mapstructure:"store"`
	MaxAgeInHours  int    `mapstructure:"max_age_in_hours"`
	CookieSecure   bool   `mapstructure:"cookie_secure"`
	CookieSameSite string `mapstructure:"cookie_same_site"`
}

// AppStorage selects the persistence backends.
type AppStorage struct {
	Driver           string `mapstructure:"driver"`
	AppointmentStore string `mapstructure:"appointment_store"`
}

type AppGenerativeAI struct {
	GeminiAPIKey         string  `mapstructure:"gemini_api_key"`
	PrescriptionModel    string  `mapstructure:"prescription_model"`
	SymptomModel         string  `mapstructure:"symptom_model"`
	TranslationModel     string  `mapstructure:"translation_model"`
	Temperature          float64 `mapstructure:"temperature"`
	MaxRequestsPerSecond float64 `mapstructure:"max_requests_per_second"`
	BurstRequests        int     `mapstructure:"burst_requests"`
	MaxImageSizeInByte   int64   `mapstructure:"max_image_size_in_byte"`
}

// AppVertex holds the service account used by the primary translator.
type AppVertex struct {
	ProjectID   string `mapstructure:"project_id"`
	Location    string `mapstructure:"location"`
	Model       string `mapstructure:"model"`
	ClientEmail string `mapstructure:"client_email"`
	PrivateKey  string `mapstructure:"private_key"`
}

func (v AppVertex) Enabled() bool {
	return v.ProjectID != "" && v.ClientEmail != "" && v.PrivateKey != ""
}

type AppTranslation struct {
	CacheTTLInHours int `mapstructure:"cache_ttl_in_hours"`
}

type AppGoogleAuth struct {
	ClientID string `mapstructure:"client_id"`
}

type AppNews struct {
	APIKey               string `mapstructure:"api_key"`
	BaseUrl              string `mapstructure:"base_url"`
	CacheTTLInMinutes    int    `mapstructure:"cache_ttl_in_minutes"`
	HTTPTimeoutInSeconds int    `mapstructure:"http_timeout_in_seconds"`
}

type AppMinio struct {
	PrescriptionBucketName string `mapstructure:"prescription_bucket_name"`
}

type AppRabbitMQ struct {
	AppointmentQueue string `mapstructure:"appointment_queue"`
}
