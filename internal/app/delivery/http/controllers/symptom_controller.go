package controllers

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SymptomController struct {
	Log            *zap.Logger
	SymptomUsecase contracts.SymptomUsecase
	Timeout        time.Duration
}

func NewSymptomController(logger *zap.Logger, symptomUsecase contracts.SymptomUsecase, timeout time.Duration) *SymptomController {
	return &SymptomController{
		Log:            logger,
		SymptomUsecase: symptomUsecase,
		Timeout:        timeout,
	}
}

func (ctrl *SymptomController) AnalyzeSymptoms(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AnalyzeSymptoms)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeAnalyzeSymptomsRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSymptomsRequired(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.SymptomUsecase.AnalyzeSymptoms(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SymptomAnalysisSuccessMessage, result)
}
