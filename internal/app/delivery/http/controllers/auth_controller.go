package controllers

import (
	"context"
	"healthportal-service/internal/app/config"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/dto/responses"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
	Timeout        time.Duration
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
		Timeout:        secondsOrDefault(internalConfig.App.RequestTimeoutInSeconds, 10*time.Second),
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.LoginUser)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeLoginUserRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.LoginWithEmailPassword(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	setSessionCookie(w, ctrl.InternalConfig.Session, result.SessionToken)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, result)
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterUser)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeRegisterUserRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.RegisterUser(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	setSessionCookie(w, ctrl.InternalConfig.Session, result.SessionToken)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegisterSuccessMessage, result)
}

func (ctrl *AuthController) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	request := new(requests.GoogleLogin)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeGoogleLoginRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.LoginWithGoogle(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	setSessionCookie(w, ctrl.InternalConfig.Session, result.SessionToken)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GoogleLoginSuccessMessage, result)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	err := ctrl.AuthUsecase.Logout(ctx, utils.GetSessionToken(r))
	if err != nil {
		ctrl.Log.Error("AuthController.Logout error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	clearSessionCookie(w, ctrl.InternalConfig.Session)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

// Session reports the current session, or a null session for anonymous callers.
func (ctrl *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSession(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccessMessage, responses.SessionStatus{Session: session})
}
