package responses

import "healthportal-service/internal/app/models"

type AuthResult struct {
	User         *models.User `json:"user"`
	RedirectPath string       `json:"redirectPath"`
	SessionToken string       `json:"-"`
}

type SessionStatus struct {
	Session *models.Session `json:"session"`
}
