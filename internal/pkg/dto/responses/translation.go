package responses

import "healthportal-service/internal/app/models"

type UITranslations struct {
	Language string            `json:"language"`
	Entries  map[string]string `json:"entries"`
}

type Languages struct {
	Languages []models.Language `json:"languages"`
}
