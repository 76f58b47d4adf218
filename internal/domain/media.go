package domain

import (
	"strings"
)

// videoContainers maps the accepted document MIME types to a file extension.
var videoContainers = map[string]string{
	"video/mp4":        "mp4",
	"video/mpeg":       "mpeg",
	"video/quicktime":  "mov",
	"video/x-msvideo":  "avi",
	"video/x-flv":      "flv",
	"video/webm":       "webm",
	"video/x-matroska": "mkv",
}

func IsVideoContainer(mimeType string) bool {
	_, ok := videoContainers[normalizeMIME(mimeType)]
	return ok
}

// ExtensionForMIME returns the extension (without dot) for a video MIME type,
// falling back to mp4.
func ExtensionForMIME(mimeType string) string {
	if ext, ok := videoContainers[normalizeMIME(mimeType)]; ok {
		return ext
	}
	return "mp4"
}

func normalizeMIME(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
