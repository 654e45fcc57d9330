package contracts

import (
	"context"
	"healthportal-service/internal/app/models"
	"time"
)

type SessionStore interface {
	Save(ctx context.Context, session *models.Session, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type SessionService interface {
	CreateSession(ctx context.Context, user *models.User) (token string, session *models.Session, err error)
	ParseSessionToken(ctx context.Context, token string) (*models.Session, error)
	DestroySession(ctx context.Context, token string) error
}
