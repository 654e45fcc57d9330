package session

import (
	"context"
	"testing"
	"time"

	"healthportal-service/internal/app/models"
	"healthportal-service/internal/app/services/shared/redis"
	"healthportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *sessionService {
	return NewSessionService(NewSessionStore(redis.NewMemoryRepository()), "test-secret", time.Hour, zap.NewNop()).(*sessionService)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	user := &models.User{ID: "doctor-1", Email: "doctor@example.com", Name: "Dr. Michael Chen", Role: models.RoleProvider}

	token, created, err := svc.CreateSession(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, created.IsAuthenticated)

	parsed, err := svc.ParseSessionToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, created.SessionID, parsed.SessionID)
	assert.Equal(t, models.RoleProvider, parsed.Role)
	assert.Equal(t, "doctor-1", parsed.UserID)

	require.NoError(t, svc.DestroySession(ctx, token))

	_, err = svc.ParseSessionToken(ctx, token)
	assert.Equal(t, 401, statusOf(t, err))
}

func TestParseSessionToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty token", func(t *testing.T) {
		_, err := newTestService().ParseSessionToken(ctx, "")
		assert.Equal(t, 401, statusOf(t, err))
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		other := NewSessionService(NewSessionStore(redis.NewMemoryRepository()), "other-secret", time.Hour, zap.NewNop())
		token, _, err := other.CreateSession(ctx, &models.User{ID: "u"})
		require.NoError(t, err)

		_, err = newTestService().ParseSessionToken(ctx, token)
		assert.Equal(t, 401, statusOf(t, err))
	})

	t.Run("Expired session record", func(t *testing.T) {
		svc := newTestService()
		token, _, err := svc.CreateSession(ctx, &models.User{ID: "u"})
		require.NoError(t, err)
		svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err = svc.ParseSessionToken(ctx, token)
		assert.Equal(t, 401, statusOf(t, err))
	})
}
