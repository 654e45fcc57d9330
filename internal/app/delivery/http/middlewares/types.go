package middlewares

import (
	"healthportal-service/internal/app/config"
	"healthportal-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	AIQuota        contracts.ResourceLimiter
	InternalConfig *config.InternalConfig
}

// NewMiddlewares builds the middleware set. aiQuota may be nil, in which case AI routes are not metered.
func NewMiddlewares(logger *zap.Logger, authUsecase contracts.AuthUsecase, aiQuota contracts.ResourceLimiter, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AuthUsecase:    authUsecase,
		AIQuota:        aiQuota,
		InternalConfig: internalConfig,
	}
}
