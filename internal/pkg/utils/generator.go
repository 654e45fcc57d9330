package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"healthportal-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateUserID() string {
	return "user-" + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateAppointmentID() string {
	return uuid.NewString()
}

// GenerateNameFromEmail returns the local part of email.
func GenerateNameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}
	return local
}

func GeneratePrescriptionObjectName(ownerID, extension string) string {
	if ownerID == "" {
		ownerID = "anonymous"
	}
	return fmt.Sprintf("%s/%s/%s%s", constvars.PrescriptionObjectPrefix, ownerID, uuid.NewString(), extension)
}

func GenerateTranslationCacheKey(language, text string) string {
	sum := sha256.Sum256([]byte(language + "|" + text))
	return constvars.RedisKeyTranslationPrefix + hex.EncodeToString(sum[:])
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}
