package symptoms

import (
	"context"
	"errors"
	"fmt"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/metrics"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/aiparse"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/exceptions"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const symptomPromptTemplate = `You are a medical assistant AI. Based on the following symptoms, provide:
1. A list of 2-3 possible medical conditions that might cause these symptoms
2. A list of recommended precautions the person should take
3. A list of over-the-counter medications that might help alleviate the symptoms
4. A severity assessment (low, medium, high, or emergency)

Format your response as a structured JSON object with the following keys:
- possibleConditions (array of strings)
- precautions (array of strings)
- suggestedMedications (array of strings)
- severity (string: "low", "medium", "high", or "emergency")
- disclaimer (string)

Always include a medical disclaimer about seeking professional medical advice.

Symptoms: %s`

type symptomUsecase struct {
	Client contracts.GenerativeClient
	Log    *zap.Logger
}

var (
	symptomUsecaseInstance contracts.SymptomUsecase
	onceSymptomUsecase     sync.Once
)

func NewSymptomUsecase(client contracts.GenerativeClient, logger *zap.Logger) contracts.SymptomUsecase {
	onceSymptomUsecase.Do(func() {
		symptomUsecaseInstance = &symptomUsecase{
			Client: client,
			Log:    logger,
		}
	})
	return symptomUsecaseInstance
}

func (uc *symptomUsecase) AnalyzeSymptoms(ctx context.Context, request *requests.AnalyzeSymptoms) (*models.SymptomAnalysis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("symptomUsecase.AnalyzeSymptoms called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	symptoms := strings.TrimSpace(request.Symptoms)
	if symptoms == "" {
		return nil, exceptions.ErrSymptomsRequired(nil)
	}

	if uc.Client == nil {
		uc.Log.Error("symptomUsecase.AnalyzeSymptoms generative client not configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrGenerativeAIConfig(nil)
	}

	text, err := uc.Client.GenerateContent(ctx, contracts.GenerateRequest{
		Prompt: fmt.Sprintf(symptomPromptTemplate, symptoms),
	})
	if err != nil {
		uc.Log.Error("symptomUsecase.AnalyzeSymptoms error calling provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderKey, uc.Client.Name()),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrGenerativeAIUpstream(err, constvars.ErrClientSymptomAnalysisFailed)
	}

	analysis := new(models.SymptomAnalysis)
	status := aiparse.Decode(text, analysis)
	aiparse.NormalizeSymptoms(analysis, status)
	if status == aiparse.StatusFallback {
		metrics.AIParseFallbackTotal.WithLabelValues(constvars.AIFeatureSymptoms).Inc()
	}

	uc.Log.Info("symptomUsecase.AnalyzeSymptoms succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingParseStatusKey, analysis.ParseStatus),
		zap.String("severity", analysis.Severity),
	)
	return analysis, nil
}
