package controllers

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TranslationController struct {
	Log                *zap.Logger
	TranslationUsecase contracts.TranslationUsecase
	Timeout            time.Duration
}

func NewTranslationController(logger *zap.Logger, translationUsecase contracts.TranslationUsecase, timeout time.Duration) *TranslationController {
	return &TranslationController{
		Log:                logger,
		TranslationUsecase: translationUsecase,
		Timeout:            timeout,
	}
}

type translateFunc func(ctx context.Context, request *requests.Translate) (*models.Translation, error)

func (ctrl *TranslationController) handleTranslate(w http.ResponseWriter, r *http.Request, translate translateFunc) {
	request := new(requests.Translate)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeTranslateRequest(request)

	if request.Text == "" || request.TargetLanguage == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTranslationInputRequired(nil))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := translate(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TranslateSuccessMessage, result)
}

func (ctrl *TranslationController) Translate(w http.ResponseWriter, r *http.Request) {
	ctrl.handleTranslate(w, r, ctrl.TranslationUsecase.Translate)
}

func (ctrl *TranslationController) TranslateWithGemini(w http.ResponseWriter, r *http.Request) {
	ctrl.handleTranslate(w, r, ctrl.TranslationUsecase.TranslateWithGemini)
}

func (ctrl *TranslationController) TranslateWithFallbackPrompt(w http.ResponseWriter, r *http.Request) {
	ctrl.handleTranslate(w, r, ctrl.TranslationUsecase.TranslateWithFallbackPrompt)
}

func (ctrl *TranslationController) GetUITranslations(w http.ResponseWriter, r *http.Request) {
	language := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamLanguage)))
	result := ctrl.TranslationUsecase.GetUITranslations(r.Context(), language)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUITranslationsMessage, result)
}

func (ctrl *TranslationController) GetLanguages(w http.ResponseWriter, r *http.Request) {
	result := ctrl.TranslationUsecase.ListLanguages(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLanguagesSuccessMessage, result)
}
