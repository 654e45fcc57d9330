package utils

import (
	"mime"
	"net/http"
	"strings"

	"healthportal-service/internal/pkg/constvars"
)

// SniffImageMIME detects jpeg, png and webp from magic bytes.
func SniffImageMIME(b []byte) string {
	if len(b) >= 3 && b[0] == 0xFF && b[1] == 0xD8 && b[2] == 0xFF {
		return constvars.MIMEImageJPEG
	}
	if len(b) >= 8 &&
		b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 &&
		b[4] == 0x0D && b[5] == 0x0A && b[6] == 0x1A && b[7] == 0x0A {
		return constvars.MIMEImagePNG
	}
	if len(b) >= 12 && string(b[0:4]) == "RIFF" && string(b[8:12]) == "WEBP" {
		return constvars.MIMEImageWebP
	}
	return http.DetectContentType(b)
}

// PickImageMIME prefers the declared type and sniffs when it is absent or generic.
func PickImageMIME(declared string, data []byte) string {
	if declared != "" {
		mediaType, _, err := mime.ParseMediaType(declared)
		if err == nil && mediaType != constvars.MIMEOctetStream {
			mediaType = strings.ToLower(mediaType)
			if mediaType == "image/jpg" {
				return constvars.MIMEImageJPEG
			}
			return mediaType
		}
	}
	if len(data) == 0 {
		return ""
	}
	return SniffImageMIME(data)
}
