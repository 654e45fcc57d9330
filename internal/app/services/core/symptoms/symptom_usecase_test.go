package symptoms

import (
	"context"
	"errors"
	"testing"

	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubClient struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubClient) Name() string { return constvars.AIProviderGemini }

func (s *stubClient) GenerateContent(ctx context.Context, request contracts.GenerateRequest) (string, error) {
	s.prompts = append(s.prompts, request.Prompt)
	return s.reply, s.err
}

func (s *stubClient) Close() error { return nil }

func customErrorOf(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr
}

func TestAnalyzeSymptoms(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank input is rejected before the provider", func(t *testing.T) {
		client := &stubClient{}
		uc := &symptomUsecase{Client: client, Log: zap.NewNop()}

		_, err := uc.AnalyzeSymptoms(ctx, &requests.AnalyzeSymptoms{Symptoms: "   \n"})

		assert.Equal(t, 400, customErrorOf(t, err).StatusCode)
		assert.Empty(t, client.prompts)
	})

	t.Run("Missing client", func(t *testing.T) {
		uc := &symptomUsecase{Log: zap.NewNop()}

		_, err := uc.AnalyzeSymptoms(ctx, &requests.AnalyzeSymptoms{Symptoms: "headache"})

		assert.Equal(t, 500, customErrorOf(t, err).StatusCode)
	})

	t.Run("Parsed reply is normalized", func(t *testing.T) {
		client := &stubClient{reply: "```json\n{\"possibleConditions\":[\"Migraine\"],\"severity\":\"HIGH\"}\n```"}
		uc := &symptomUsecase{Client: client, Log: zap.NewNop()}

		analysis, err := uc.AnalyzeSymptoms(ctx, &requests.AnalyzeSymptoms{Symptoms: "throbbing headache"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Migraine"}, analysis.PossibleConditions)
		assert.Equal(t, constvars.SeverityHigh, analysis.Severity)
		assert.Equal(t, constvars.DefaultMedicalDisclaimer, analysis.Disclaimer)
		assert.Equal(t, []string{}, analysis.Precautions)
		assert.Equal(t, constvars.ParseStatusParsed, analysis.ParseStatus)
		assert.Contains(t, client.prompts[0], "Symptoms: throbbing headache")
	})

	t.Run("Unparseable reply falls back", func(t *testing.T) {
		uc := &symptomUsecase{Client: &stubClient{reply: "Please see a doctor."}, Log: zap.NewNop()}

		analysis, err := uc.AnalyzeSymptoms(ctx, &requests.AnalyzeSymptoms{Symptoms: "cough"})

		require.NoError(t, err)
		assert.Equal(t, constvars.ParseStatusFallback, analysis.ParseStatus)
		assert.Equal(t, constvars.SeverityLow, analysis.Severity)
		assert.Empty(t, analysis.PossibleConditions)
	})

	t.Run("Provider failure", func(t *testing.T) {
		uc := &symptomUsecase{Client: &stubClient{err: errors.New("503")}, Log: zap.NewNop()}

		_, err := uc.AnalyzeSymptoms(ctx, &requests.AnalyzeSymptoms{Symptoms: "cough"})

		customErr := customErrorOf(t, err)
		assert.Equal(t, 502, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientSymptomAnalysisFailed, customErr.ClientMessage)
	})
}
