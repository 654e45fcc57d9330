package middlewares

import (
	"context"
	"errors"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const sessionLookupTimeout = 5 * time.Second

func (m *Middlewares) lookupSession(r *http.Request, token string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(r.Context(), sessionLookupTimeout)
	defer cancel()

	return m.AuthUsecase.GetSession(ctx, token)
}

// OptionalAuthenticate attaches the session when the request carries a valid one and never rejects.
func (m *Middlewares) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.GetSessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.lookupSession(r, token)
		if err != nil || session == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.GetSessionToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.lookupSession(r, token)
		if err != nil {
			m.Log.Error("Middlewares.Authenticate session lookup failed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			if errors.Is(err, context.DeadlineExceeded) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole must run after Authenticate.
func (m *Middlewares) RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := utils.GetSession(r.Context())
			if session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}

			for _, role := range roles {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			m.Log.Info("Middlewares.RequireRole rejected session",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingUserIDKey, session.UserID),
				zap.String(constvars.LoggingRoleKey, string(session.Role)),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
		})
	}
}
