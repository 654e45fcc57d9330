package auth

import (
	"context"
	"healthportal-service/internal/app/config"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/dto/responses"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	GoogleVerifier contracts.GoogleTokenVerifier
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	googleVerifier contracts.GoogleTokenVerifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			GoogleVerifier: googleVerifier,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) LoginWithEmailPassword(ctx context.Context, request *requests.LoginUser) (*responses.AuthResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginWithEmailPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, strings.ToLower(request.Email))
	if err != nil {
		uc.Log.Error("authUsecase.LoginWithEmailPassword error finding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		uc.Log.Info("authUsecase.LoginWithEmailPassword user not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrUserNotFound(nil)
	}

	if user.Password == "" || !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.Log.Info("authUsecase.LoginWithEmailPassword invalid password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
		)
		return nil, exceptions.ErrInvalidPassword(nil)
	}

	return uc.startSession(ctx, "authUsecase.LoginWithEmailPassword", user)
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.AuthResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	role := models.Role(request.Role)
	if role == "" {
		role = models.RolePatient
	}
	if !role.IsValid() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password, uc.InternalConfig.App.PasswordHashAlgorithm)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	email := strings.ToLower(request.Email)
	user := &models.User{
		ID:       utils.GenerateUserID(),
		Email:    email,
		Name:     utils.GenerateNameFromEmail(email),
		Password: hashedPassword,
		Role:     role,
		Provider: constvars.AuthProviderPassword,
	}
	user.SetCreatedAtUpdatedAt()

	err = uc.UserRepository.Insert(ctx, user)
	if err != nil {
		uc.Log.Info("authUsecase.RegisterUser error inserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.startSession(ctx, "authUsecase.RegisterUser", user)
}

func (uc *authUsecase) LoginWithGoogle(ctx context.Context, request *requests.GoogleLogin) (*responses.AuthResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginWithGoogle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	identity, err := uc.GoogleVerifier.Verify(ctx, request.Credential)
	if err != nil {
		uc.Log.Error("authUsecase.LoginWithGoogle error verifying credential",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	user, err := uc.UserRepository.FindByEmail(ctx, identity.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &models.User{
			ID:       utils.GenerateUserID(),
			Email:    identity.Email,
			Name:     identity.Name,
			Role:     models.RolePatient,
			Picture:  identity.Picture,
			Provider: constvars.AuthProviderGoogle,
		}
		if user.Name == "" {
			user.Name = utils.GenerateNameFromEmail(identity.Email)
		}
		user.SetCreatedAtUpdatedAt()

		err = uc.UserRepository.Insert(ctx, user)
		if err != nil {
			// A concurrent sign-in may have created the account first.
			existing, findErr := uc.UserRepository.FindByEmail(ctx, identity.Email)
			if findErr != nil || existing == nil {
				return nil, err
			}
			user = existing
		} else {
			uc.Log.Info("authUsecase.LoginWithGoogle created user",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, user.ID),
			)
		}
	}

	if user.Picture == "" {
		user.Picture = identity.Picture
	}

	return uc.startSession(ctx, "authUsecase.LoginWithGoogle", user)
}

func (uc *authUsecase) Logout(ctx context.Context, sessionToken string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if sessionToken == "" {
		return nil
	}

	err := uc.SessionService.DestroySession(ctx, sessionToken)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error destroying session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// GetSession never fails on a bad token; it returns nil so callers can render the logged-out state.
func (uc *authUsecase) GetSession(ctx context.Context, sessionToken string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.GetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if sessionToken == "" {
		return nil, nil
	}

	session, err := uc.SessionService.ParseSessionToken(ctx, sessionToken)
	if err != nil {
		uc.Log.Info("authUsecase.GetSession no active session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil
	}
	return session, nil
}

func (uc *authUsecase) startSession(ctx context.Context, caller string, user *models.User) (*responses.AuthResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	token, _, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		uc.Log.Error(caller+" error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info(caller+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingRoleKey, string(user.Role)),
	)

	return &responses.AuthResult{
		User:         user,
		RedirectPath: user.Role.DashboardPath(),
		SessionToken: token,
	}, nil
}
