package middlewares

import (
	"context"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// pageOwners maps each protected page prefix to the role whose dashboard it belongs to.
var pageOwners = map[string]models.Role{
	constvars.PagePathPatientDashboard:  models.RolePatient,
	constvars.PagePathPatientAppts:      models.RolePatient,
	constvars.PagePathProviderDashboard: models.RoleProvider,
	constvars.PagePathAdminDashboard:    models.RoleAdmin,
}

func protectedPrefix(path string) (string, bool) {
	for _, prefix := range constvars.ProtectedPagePrefixes {
		if strings.HasPrefix(path, prefix) {
			return prefix, true
		}
	}
	return "", false
}

// ProtectRoutes guards the page routes.
//   - Anonymous requests to a protected page are sent to /auth.
//   - Signed in users hitting /auth are sent to their dashboard.
//   - Signed in users hitting another role's page are sent to their own dashboard.
func (m *Middlewares) ProtectRoutes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		var session *models.Session
		if token := utils.GetSessionToken(r); token != "" {
			found, err := m.lookupSession(r, token)
			if err != nil {
				m.Log.Error("Middlewares.ProtectRoutes session lookup failed",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.Error(err),
				)
			}
			session = found
		}
		isAuthenticated := session != nil && session.IsAuthenticated

		if strings.HasPrefix(path, constvars.PagePathAuth) {
			if isAuthenticated {
				http.Redirect(w, r, session.Role.DashboardPath(), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		prefix, protected := protectedPrefix(path)
		if !protected {
			next.ServeHTTP(w, r)
			return
		}

		if !isAuthenticated {
			http.Redirect(w, r, constvars.PagePathAuth, http.StatusFound)
			return
		}

		if owner := pageOwners[prefix]; owner != session.Role {
			m.Log.Info("Middlewares.ProtectRoutes redirecting to own dashboard",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingRoleKey, string(session.Role)),
				zap.String(constvars.LoggingEndpointKey, path),
			)
			http.Redirect(w, r, session.Role.DashboardPath(), http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
