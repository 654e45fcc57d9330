package middlewares

import (
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// AIQuotaLimit meters calls to the generative AI routes per session or client IP.
// Limiter errors let the request through so an unavailable Redis does not take AI features down.
func (m *Middlewares) AIQuotaLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.AIQuota == nil {
			next.ServeHTTP(w, r)
			return
		}

		key := utils.ClientKey(r)
		allowed, retryAfter, err := m.AIQuota.Allow(r.Context(), key)
		if err != nil {
			m.Log.Warn("Middlewares.AIQuotaLimit limiter unavailable",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(seconds))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAIQuotaExceeded(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
