package utils

import (
	"healthportal-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeGoogleLoginRequest(input *requests.GoogleLogin) {
	input.Credential = strings.TrimSpace(input.Credential)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
}

func SanitizeAnalyzeSymptomsRequest(input *requests.AnalyzeSymptoms) {
	input.Symptoms = strings.TrimSpace(input.Symptoms)
}

func SanitizeTranslateRequest(input *requests.Translate) {
	input.TargetLanguage = strings.TrimSpace(input.TargetLanguage)
}
