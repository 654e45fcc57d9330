package middlewares

import (
	"context"
	"errors"
	"healthportal-service/internal/app/config"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/dto/responses"
	"healthportal-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) LoginWithEmailPassword(ctx context.Context, request *requests.LoginUser) (*responses.AuthResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.AuthResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) LoginWithGoogle(ctx context.Context, request *requests.GoogleLogin) (*responses.AuthResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionToken string) error {
	args := m.Called(ctx, sessionToken)
	return args.Error(0)
}

func (m *MockAuthUsecase) GetSession(ctx context.Context, sessionToken string) (*models.Session, error) {
	args := m.Called(ctx, sessionToken)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

type fakeLimiter struct {
	allowed    bool
	retryAfter time.Duration
	err        error
	keys       []string
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	f.keys = append(f.keys, key)
	return f.allowed, f.retryAfter, f.err
}

func newTestMiddlewares(authUsecase *MockAuthUsecase) *Middlewares {
	return &Middlewares{
		Log:            zap.NewNop(),
		AuthUsecase:    authUsecase,
		InternalConfig: &config.InternalConfig{App: config.App{RequestBodyLimitInMegabyte: 1}},
	}
}

func sessionFor(role models.Role) *models.Session {
	return &models.Session{SessionID: "sess-1", UserID: "user-1", Role: role, IsAuthenticated: true}
}

func withCookie(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: token})
	return req
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("success"))
})

func TestAuthenticate(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	m := newTestMiddlewares(authUsecase)

	t.Run("Missing Cookie", func(t *testing.T) {
		rr := httptest.NewRecorder()
		m.Authenticate(okHandler).ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/appointments", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		authUsecase.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		authUsecase.On("GetSession", mock.Anything, "stale").Return(nil, nil).Once()

		rr := httptest.NewRecorder()
		req := withCookie(httptest.NewRequest("GET", "/api/v1/appointments", nil), "stale")
		m.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Valid Session Is Placed In Context", func(t *testing.T) {
		authUsecase.On("GetSession", mock.Anything, "good").Return(sessionFor(models.RolePatient), nil).Once()

		var seen *models.Session
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetSession(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		rr := httptest.NewRecorder()
		req := withCookie(httptest.NewRequest("GET", "/api/v1/appointments", nil), "good")
		m.Authenticate(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		if assert.NotNil(t, seen) {
			assert.Equal(t, "user-1", seen.UserID)
		}
	})

	t.Run("Bearer Token Is Accepted", func(t *testing.T) {
		authUsecase.On("GetSession", mock.Anything, "bearer-token").Return(sessionFor(models.RoleAdmin), nil).Once()

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer bearer-token")
		m.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Lookup Failure", func(t *testing.T) {
		authUsecase.On("GetSession", mock.Anything, "boom").Return(nil, context.DeadlineExceeded).Once()

		rr := httptest.NewRecorder()
		req := withCookie(httptest.NewRequest("GET", "/api/v1/appointments", nil), "boom")
		m.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})
}

func TestOptionalAuthenticate(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	m := newTestMiddlewares(authUsecase)
	authUsecase.On("GetSession", mock.Anything, "broken").Return(nil, errors.New("redis down"))

	rr := httptest.NewRecorder()
	req := withCookie(httptest.NewRequest("POST", "/api/v1/ocr", nil), "broken")
	m.OptionalAuthenticate(okHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "optional auth never rejects")
}

func TestRequireRole(t *testing.T) {
	m := newTestMiddlewares(new(MockAuthUsecase))
	handler := m.RequireRole(models.RoleAdmin)(okHandler)

	t.Run("Allowed Role", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionFor(models.RoleAdmin)))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Other Role", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionFor(models.RolePatient)))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("No Session", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestProtectRoutes(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	authUsecase.On("GetSession", mock.Anything, "patient-token").Return(sessionFor(models.RolePatient), nil)
	authUsecase.On("GetSession", mock.Anything, "provider-token").Return(sessionFor(models.RoleProvider), nil)
	authUsecase.On("GetSession", mock.Anything, "admin-token").Return(sessionFor(models.RoleAdmin), nil)
	authUsecase.On("GetSession", mock.Anything, "stale-token").Return(nil, nil)

	m := newTestMiddlewares(authUsecase)
	handler := m.ProtectRoutes(okHandler)

	tests := []struct {
		name     string
		path     string
		token    string
		code     int
		location string
	}{
		{name: "anonymous patient dashboard", path: "/patient/dashboard", code: http.StatusFound, location: "/auth"},
		{name: "anonymous patient appointments", path: "/patient/appointments", code: http.StatusFound, location: "/auth"},
		{name: "anonymous provider dashboard", path: "/provider/dashboard", code: http.StatusFound, location: "/auth"},
		{name: "anonymous admin dashboard", path: "/admin/dashboard", code: http.StatusFound, location: "/auth"},
		{name: "stale cookie is anonymous", path: "/admin/dashboard", token: "stale-token", code: http.StatusFound, location: "/auth"},
		{name: "anonymous auth page", path: "/auth", code: http.StatusOK},
		{name: "patient on auth page", path: "/auth", token: "patient-token", code: http.StatusFound, location: "/patient/dashboard"},
		{name: "provider on auth page", path: "/auth", token: "provider-token", code: http.StatusFound, location: "/provider/dashboard"},
		{name: "admin on auth page", path: "/auth", token: "admin-token", code: http.StatusFound, location: "/admin/dashboard"},
		{name: "patient on own dashboard", path: "/patient/dashboard", token: "patient-token", code: http.StatusOK},
		{name: "patient on appointments", path: "/patient/appointments", token: "patient-token", code: http.StatusOK},
		{name: "patient on admin dashboard", path: "/admin/dashboard", token: "patient-token", code: http.StatusFound, location: "/patient/dashboard"},
		{name: "provider on admin dashboard", path: "/admin/dashboard", token: "provider-token", code: http.StatusFound, location: "/provider/dashboard"},
		{name: "admin on provider dashboard", path: "/provider/dashboard", token: "admin-token", code: http.StatusFound, location: "/admin/dashboard"},
		{name: "unprotected patient path", path: "/patient/profile", code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.token != "" {
				req = withCookie(req, tt.token)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.code, rr.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, rr.Header().Get(constvars.HeaderLocation))
			}
		})
	}
}

func TestAIQuotaLimit(t *testing.T) {
	t.Run("Over Quota", func(t *testing.T) {
		limiter := &fakeLimiter{allowed: false, retryAfter: 1500 * time.Millisecond}
		m := newTestMiddlewares(new(MockAuthUsecase))
		m.AIQuota = limiter

		req := httptest.NewRequest("POST", "/api/v1/analyze-symptoms", nil)
		req.RemoteAddr = "10.0.0.7:41000"
		rr := httptest.NewRecorder()
		m.AIQuotaLimit(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "2", rr.Header().Get(constvars.HeaderRetryAfter))
		assert.Equal(t, []string{"ip:10.0.0.7"}, limiter.keys)
	})

	t.Run("Keyed By Session", func(t *testing.T) {
		limiter := &fakeLimiter{allowed: true}
		m := newTestMiddlewares(new(MockAuthUsecase))
		m.AIQuota = limiter

		req := httptest.NewRequest("POST", "/api/v1/ocr", nil)
		req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionFor(models.RolePatient)))
		rr := httptest.NewRecorder()
		m.AIQuotaLimit(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, []string{"user:user-1"}, limiter.keys)
	})

	t.Run("Limiter Error Lets Request Through", func(t *testing.T) {
		m := newTestMiddlewares(new(MockAuthUsecase))
		m.AIQuota = &fakeLimiter{err: errors.New("redis down")}

		rr := httptest.NewRecorder()
		m.AIQuotaLimit(okHandler).ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/ocr", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("No Limiter Configured", func(t *testing.T) {
		m := newTestMiddlewares(new(MockAuthUsecase))

		rr := httptest.NewRecorder()
		m.AIQuotaLimit(okHandler).ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/ocr", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(new(MockAuthUsecase))

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("Generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Client Supplied", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", seen)
	})
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	m := newTestMiddlewares(new(MockAuthUsecase))
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.ErrCodeInternal)
}
