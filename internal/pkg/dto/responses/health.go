package responses

type HealthCheck struct {
	Status  string `json:"status"`
	App     string `json:"app"`
	Version string `json:"version"`
}
