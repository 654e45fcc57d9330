package utils

import (
	"context"
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

// GetSession returns the authenticated session carried by ctx, or nil.
func GetSession(ctx context.Context) *models.Session {
	if session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session); ok {
		return session
	}
	return nil
}
