package controllers

import (
	"context"
	"fmt"
	"healthportal-service/internal/app/config"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/responses"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// PageController serves the role pages as JSON summaries. The pages sit behind ProtectRoutes,
// which puts the session in the context.
type PageController struct {
	Log                *zap.Logger
	DashboardUsecase   contracts.DashboardUsecase
	AppointmentUsecase contracts.AppointmentUsecase
	InternalConfig     *config.InternalConfig
	Timeout            time.Duration
}

func NewPageController(
	logger *zap.Logger,
	dashboardUsecase contracts.DashboardUsecase,
	appointmentUsecase contracts.AppointmentUsecase,
	internalConfig *config.InternalConfig,
	timeout time.Duration,
) *PageController {
	return &PageController{
		Log:                logger,
		DashboardUsecase:   dashboardUsecase,
		AppointmentUsecase: appointmentUsecase,
		InternalConfig:     internalConfig,
		Timeout:            timeout,
	}
}

func (ctrl *PageController) AuthPage(w http.ResponseWriter, r *http.Request) {
	prefix := fmt.Sprintf("/%s/%s/auth", ctrl.InternalConfig.App.EndpointPrefix, ctrl.InternalConfig.App.Version)
	page := responses.AuthPage{
		LoginEndpoint:    prefix + "/login",
		RegisterEndpoint: prefix + "/register",
		GoogleEndpoint:   prefix + "/google",
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AuthPageAvailableMessage, page)
}

func (ctrl *PageController) PatientDashboard(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSession(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.DashboardUsecase.PatientDashboard(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardSuccessMessage, result)
}

func (ctrl *PageController) PatientAppointments(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSession(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.ListAppointments(ctx, session.UserID)
	if err != nil {
		ctrl.Log.Error("PageController.PatientAppointments error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err))
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, result)
}

func (ctrl *PageController) ProviderDashboard(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSession(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.DashboardUsecase.ProviderDashboard(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardSuccessMessage, result)
}

func (ctrl *PageController) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSession(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.DashboardUsecase.AdminDashboard(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardSuccessMessage, result)
}
