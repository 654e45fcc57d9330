package controllers

import (
	"healthportal-service/internal/app/config"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/responses"
	"healthportal-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.HealthCheck{
		Status:  "ok",
		App:     ctrl.InternalConfig.App.Name,
		Version: ctrl.InternalConfig.App.Version,
	})
}
