package exceptions

import (
	"errors"
	"testing"

	"healthportal-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Email string `validate:"required,email"`
	Role  string `validate:"oneof=patient provider admin"`
	Name  string `validate:"min=3"`
}

func TestBuildNewCustomError(t *testing.T) {
	t.Run("Wraps dev message with cause", func(t *testing.T) {
		err := ErrUserNotFound(errors.New("no documents"))

		assert.Equal(t, constvars.StatusNotFound, err.StatusCode)
		assert.Equal(t, constvars.ErrCodeUserNotFound, err.Code)
		assert.Equal(t, constvars.ErrClientUserNotFound, err.ClientMessage)
		assert.Equal(t, constvars.ErrDevUserNotExists+": no documents", err.DevMessage)
		assert.NotNil(t, err.Location)
		assert.Contains(t, err.Location.File, "exceptions_test.go")
	})

	t.Run("Nil cause keeps dev message", func(t *testing.T) {
		err := ErrNoImageProvided(nil)

		assert.Equal(t, constvars.ErrDevImageMissing, err.DevMessage)
		assert.Equal(t, constvars.ErrClientNoImageProvided, err.ClientMessage)
		assert.Equal(t, constvars.StatusBadRequest, err.StatusCode)
	})

	t.Run("Upstream errors carry the client message given", func(t *testing.T) {
		err := ErrGenerativeAIUpstream(errors.New("503"), constvars.ErrClientSymptomAnalysisFailed)

		assert.Equal(t, constvars.StatusBadGateway, err.StatusCode)
		assert.Equal(t, constvars.ErrClientSymptomAnalysisFailed, err.ClientMessage)
	})
}

func TestFormatFirstValidationError(t *testing.T) {
	validate := validator.New()

	t.Run("Nil error", func(t *testing.T) {
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(nil))
	})

	t.Run("Required tag", func(t *testing.T) {
		err := validate.Struct(sampleInput{Role: "patient", Name: "abc"})
		assert.Equal(t, "email is required", FormatFirstValidationError(err))
	})

	t.Run("Oneof tag lists options", func(t *testing.T) {
		err := validate.Struct(sampleInput{Email: "a@b.co", Role: "nurse", Name: "abc"})
		assert.Equal(t, "role must be one of [patient, provider, admin]", FormatFirstValidationError(err))
	})

	t.Run("Min tag substitutes param", func(t *testing.T) {
		err := validate.Struct(sampleInput{Email: "a@b.co", Role: "admin", Name: "ab"})
		assert.Equal(t, "name must be at least 3 characters long", FormatFirstValidationError(err))
	})

	t.Run("Non validation error", func(t *testing.T) {
		assert.Equal(t, constvars.ErrDevInvalidInput, FormatFirstValidationError(errors.New("boom")))
	})
}
