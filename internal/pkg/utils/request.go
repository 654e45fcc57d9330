package utils

import (
	"healthportal-service/internal/pkg/constvars"
	"net"
	"net/http"
	"strings"
)

// GetSessionToken reads the session token from the session cookie, falling back to a bearer token.
func GetSessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// ClientKey identifies the caller for quota accounting: the session user when known, the remote IP otherwise.
func ClientKey(r *http.Request) string {
	if session := GetSession(r.Context()); session != nil {
		return "user:" + session.UserID
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ip:" + ip
}
