package translations

import (
	"context"
	"errors"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/metrics"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/dto/responses"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type translationUsecase struct {
	Primary         contracts.GenerativeClient
	Fallback        contracts.GenerativeClient
	RedisRepository contracts.RedisRepository
	CacheTTL        time.Duration
	Log             *zap.Logger
}

var (
	translationUsecaseInstance contracts.TranslationUsecase
	onceTranslationUsecase     sync.Once
)

// NewTranslationUsecase takes the managed-cloud client as primary and the API-key
// client as fallback. Either may be nil.
func NewTranslationUsecase(
	primary contracts.GenerativeClient,
	fallback contracts.GenerativeClient,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.TranslationUsecase {
	onceTranslationUsecase.Do(func() {
		translationUsecaseInstance = &translationUsecase{
			Primary:         primary,
			Fallback:        fallback,
			RedisRepository: redisRepository,
			CacheTTL:        cacheTTL,
			Log:             logger,
		}
	})
	return translationUsecaseInstance
}

func skipTranslation(request *requests.Translate) bool {
	return strings.TrimSpace(request.Text) == "" || request.TargetLanguage == constvars.DefaultLanguageCode
}

func skipped(request *requests.Translate) *models.Translation {
	return &models.Translation{
		TranslatedText: request.Text,
		SourceText:     request.Text,
		TargetLanguage: request.TargetLanguage,
		Status:         constvars.TranslationStatusSkipped,
	}
}

func (uc *translationUsecase) Translate(ctx context.Context, request *requests.Translate) (*models.Translation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("translationUsecase.Translate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLanguageKey, request.TargetLanguage),
	)

	if skipTranslation(request) {
		metrics.TranslationsTotal.WithLabelValues(constvars.TranslationStatusSkipped).Inc()
		return skipped(request), nil
	}

	cacheKey := utils.GenerateTranslationCacheKey(request.TargetLanguage, request.Text)
	if cached := uc.lookupCache(ctx, cacheKey); cached != nil {
		uc.Log.Info("translationUsecase.Translate served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Bool(constvars.LoggingCacheHitKey, true),
		)
		metrics.TranslationsTotal.WithLabelValues(cached.Status).Inc()
		return cached, nil
	}

	prompt := directPrompt(LanguageName(request.TargetLanguage), request.Text)
	result := &models.Translation{
		SourceText:     request.Text,
		TargetLanguage: request.TargetLanguage,
	}

	translated, primaryErr := uc.generate(ctx, uc.Primary, prompt)
	if primaryErr == nil {
		result.TranslatedText = orOriginal(translated, request.Text)
		result.Status = constvars.TranslationStatusOK
		result.Provider = uc.Primary.Name()
	} else {
		uc.Log.Warn("translationUsecase.Translate primary provider failed, falling back",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(primaryErr),
		)

		translated, fallbackErr := uc.generate(ctx, uc.Fallback, prompt)
		if fallbackErr != nil {
			uc.Log.Error("translationUsecase.Translate fallback provider failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(fallbackErr),
			)
			result.TranslatedText = request.Text
			result.Status = constvars.TranslationStatusFailed
			metrics.TranslationsTotal.WithLabelValues(result.Status).Inc()
			return result, nil
		}
		result.TranslatedText = orOriginal(translated, request.Text)
		result.Status = constvars.TranslationStatusDegraded
		result.Provider = uc.Fallback.Name()
	}

	uc.storeCache(ctx, cacheKey, result)
	metrics.TranslationsTotal.WithLabelValues(result.Status).Inc()

	uc.Log.Info("translationUsecase.Translate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTranslationKey, result.Status),
		zap.String(constvars.LoggingProviderKey, result.Provider),
	)
	return result, nil
}

func (uc *translationUsecase) TranslateWithGemini(ctx context.Context, request *requests.Translate) (*models.Translation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("translationUsecase.TranslateWithGemini called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLanguageKey, request.TargetLanguage),
	)

	return uc.translateDirect(ctx, request, directPrompt(LanguageName(request.TargetLanguage), request.Text), false)
}

func (uc *translationUsecase) TranslateWithFallbackPrompt(ctx context.Context, request *requests.Translate) (*models.Translation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("translationUsecase.TranslateWithFallbackPrompt called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLanguageKey, request.TargetLanguage),
	)

	return uc.translateDirect(ctx, request, textOnlyPrompt(LanguageName(request.TargetLanguage), request.Text), true)
}

func (uc *translationUsecase) GetUITranslations(ctx context.Context, language string) *responses.UITranslations {
	if language == "" {
		language = constvars.DefaultLanguageCode
	}

	entries := make(map[string]string, len(uiDictionary))
	for key, texts := range uiDictionary {
		if text, ok := texts[language]; ok {
			entries[key] = text
			continue
		}
		entries[key] = texts[constvars.DefaultLanguageCode]
	}
	return &responses.UITranslations{
		Language: language,
		Entries:  entries,
	}
}

func (uc *translationUsecase) ListLanguages(ctx context.Context) *responses.Languages {
	languages := make([]models.Language, len(supportedUILanguages))
	copy(languages, supportedUILanguages)
	return &responses.Languages{Languages: languages}
}

// translateDirect calls the API-key client with no fallback; errors surface to the caller.
func (uc *translationUsecase) translateDirect(ctx context.Context, request *requests.Translate, prompt string, trim bool) (*models.Translation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if skipTranslation(request) {
		metrics.TranslationsTotal.WithLabelValues(constvars.TranslationStatusSkipped).Inc()
		return skipped(request), nil
	}
	if uc.Fallback == nil {
		return nil, exceptions.ErrGenerativeAIConfig(nil)
	}

	translated, err := uc.Fallback.GenerateContent(ctx, contracts.GenerateRequest{Prompt: prompt})
	if err != nil {
		uc.Log.Error("translationUsecase.translateDirect error calling provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		metrics.TranslationsTotal.WithLabelValues(constvars.TranslationStatusFailed).Inc()
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrGenerativeAIUpstream(err, constvars.ErrClientTranslationFailed)
	}
	if trim {
		translated = strings.TrimSpace(translated)
	}

	metrics.TranslationsTotal.WithLabelValues(constvars.TranslationStatusOK).Inc()
	return &models.Translation{
		TranslatedText: translated,
		SourceText:     request.Text,
		TargetLanguage: request.TargetLanguage,
		Status:         constvars.TranslationStatusOK,
		Provider:       uc.Fallback.Name(),
	}, nil
}

func (uc *translationUsecase) generate(ctx context.Context, client contracts.GenerativeClient, prompt string) (string, error) {
	if client == nil {
		return "", exceptions.ErrGenerativeAIConfig(nil)
	}
	return client.GenerateContent(ctx, contracts.GenerateRequest{Prompt: prompt})
}

func (uc *translationUsecase) lookupCache(ctx context.Context, key string) *models.Translation {
	if uc.RedisRepository == nil || uc.CacheTTL <= 0 {
		return nil
	}
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil || raw == "" {
		return nil
	}
	cached := new(models.Translation)
	if err := json.Unmarshal([]byte(raw), cached); err != nil {
		return nil
	}
	return cached
}

func (uc *translationUsecase) storeCache(ctx context.Context, key string, translation *models.Translation) {
	if uc.RedisRepository == nil || uc.CacheTTL <= 0 {
		return
	}
	err := uc.RedisRepository.Set(ctx, key, translation, uc.CacheTTL)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("translationUsecase.Translate cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func orOriginal(translated, original string) string {
	if strings.TrimSpace(translated) == "" {
		return original
	}
	return translated
}
