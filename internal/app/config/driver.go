package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

// Enabled reports whether a Redis host is configured.
func (r Redis) Enabled() bool { return r.Host != "" }

func (m MongoDB) Enabled() bool { return m.Host != "" }

func (r RabbitMQ) Enabled() bool { return r.Host != "" }

func (m Minio) Enabled() bool { return m.Host != "" }
