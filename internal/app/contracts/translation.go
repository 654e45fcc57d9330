package contracts

import (
	"context"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/dto/responses"
)

type TranslationUsecase interface {
	// Translate tries the primary provider and degrades to the fallback provider.
	Translate(ctx context.Context, request *requests.Translate) (*models.Translation, error)
	TranslateWithGemini(ctx context.Context, request *requests.Translate) (*models.Translation, error)
	TranslateWithFallbackPrompt(ctx context.Context, request *requests.Translate) (*models.Translation, error)
	GetUITranslations(ctx context.Context, language string) *responses.UITranslations
	ListLanguages(ctx context.Context) *responses.Languages
}
