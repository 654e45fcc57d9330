package utils

import (
	"healthportal-service/internal/pkg/constvars"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	languageCodePattern = regexp.MustCompile(constvars.RegexLanguageCode)
	datePattern         = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	timePattern         = regexp.MustCompile(constvars.RegexTimeHHMM)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("language_code", validateLanguageCode)
	validate.RegisterValidation("appointment_date", validateAppointmentDate)
	validate.RegisterValidation("appointment_time", validateAppointmentTime)
	validate.RegisterValidation("notblank", validateNotBlank)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RolePatient, constvars.RoleProvider, constvars.RoleAdmin:
		return true
	}
	return false
}

func validateLanguageCode(fl validator.FieldLevel) bool {
	return languageCodePattern.MatchString(fl.Field().String())
}

func validateAppointmentDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !datePattern.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func validateAppointmentTime(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !timePattern.MatchString(value) {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
