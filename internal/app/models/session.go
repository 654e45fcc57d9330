package models

import "time"

type Session struct {
	SessionID       string    `json:"sessionId"`
	UserID          string    `json:"userId"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            Role      `json:"role"`
	Picture         string    `json:"picture,omitempty"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	ExpiresAt       time.Time `json:"expiresAt"`
}

func NewSession(sessionID string, user *User, ttl time.Duration) *Session {
	return &Session{
		SessionID:       sessionID,
		UserID:          user.ID,
		Email:           user.Email,
		Name:            user.Name,
		Role:            user.Role,
		Picture:         user.Picture,
		IsAuthenticated: true,
		ExpiresAt:       time.Now().Add(ttl),
	}
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
