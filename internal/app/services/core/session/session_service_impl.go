package session

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type sessionService struct {
	SessionStore contracts.SessionStore
	JWTSecret    string
	MaxAge       time.Duration
	Log          *zap.Logger
	now          func() time.Time
}

func NewSessionService(sessionStore contracts.SessionStore, jwtSecret string, maxAge time.Duration, logger *zap.Logger) contracts.SessionService {
	if maxAge <= 0 {
		maxAge = constvars.SessionMaxAge
	}
	return &sessionService{
		SessionStore: sessionStore,
		JWTSecret:    jwtSecret,
		MaxAge:       maxAge,
		Log:          logger,
		now:          time.Now,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, user *models.User) (string, *models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session := models.NewSession(utils.GenerateSessionID(), user, svc.MaxAge)
	err := svc.SessionStore.Save(ctx, session, svc.MaxAge)
	if err != nil {
		svc.Log.Error("sessionService.CreateSession error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
		return "", nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, svc.JWTSecret, svc.MaxAge)
	if err != nil {
		return "", nil, err
	}

	svc.Log.Info("sessionService.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingRoleKey, string(session.Role)),
	)
	return token, session, nil
}

func (svc *sessionService) ParseSessionToken(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	sessionID, err := utils.ParseJWT(token, svc.JWTSecret)
	if err != nil {
		return nil, err
	}

	session, err := svc.SessionStore.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.IsExpired(svc.now()) {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (svc *sessionService) DestroySession(ctx context.Context, token string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	sessionID, err := utils.ParseJWT(token, svc.JWTSecret)
	if err != nil {
		return err
	}

	err = svc.SessionStore.Delete(ctx, sessionID)
	if err != nil {
		svc.Log.Error("sessionService.DestroySession error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return err
	}

	svc.Log.Info("sessionService.DestroySession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}
