package controllers

import (
	"context"
	"errors"
	"healthportal-service/internal/app/config"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/exceptions"
	"healthportal-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func secondsOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

func sameSiteMode(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func setSessionCookie(w http.ResponseWriter, sessionConfig config.AppSession, token string) {
	maxAge := secondsOrDefault(sessionConfig.MaxAgeInHours*3600, constvars.SessionMaxAge)
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   sessionConfig.CookieSecure,
		SameSite: sameSiteMode(sessionConfig.CookieSameSite),
	})
}

func clearSessionCookie(w http.ResponseWriter, sessionConfig config.AppSession) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   sessionConfig.CookieSecure,
		SameSite: sameSiteMode(sessionConfig.CookieSameSite),
	})
}
