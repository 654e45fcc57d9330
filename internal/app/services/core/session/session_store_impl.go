package session

import (
	"context"
	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

// sessionStore persists sessions under session:<id>. It runs on either the Redis
// repository or the in-process one.
type sessionStore struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionStore(redisRepository contracts.RedisRepository) contracts.SessionStore {
	return &sessionStore{
		RedisRepository: redisRepository,
	}
}

func sessionKey(sessionID string) string {
	return constvars.RedisKeySessionPrefix + sessionID
}

func (s *sessionStore) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return s.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
}

func (s *sessionStore) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := s.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, nil
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
