// Package validation cleans names taken from webhook payloads before they
// reach the filesystem.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/mediaferry/internal/domain"
)

// maxFilenameLength is the usual filesystem limit, in bytes.
const maxFilenameLength = 255

var unsafeChars = map[rune]bool{
	'"':  true,
	'\\': true,
	'/':  true,
	':':  true,
	'*':  true,
	'?':  true,
	'<':  true,
	'>':  true,
	'|':  true,
}

// SanitizeFilename makes name safe to use as a single path element. Unsafe
// characters become underscores, Unicode is kept, and the result is cut to
// 255 bytes without losing the extension. It returns "" when nothing usable
// is left.
func SanitizeFilename(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		if r < 32 || r == 127 || unsafeChars[r] {
			sb.WriteRune('_')
			continue
		}
		sb.WriteRune(r)
	}

	result := strings.Trim(strings.TrimSpace(sb.String()), ".")
	if strings.Trim(result, "_ ") == "" {
		return ""
	}
	if len(result) > maxFilenameLength {
		result = truncatePreservingExtension(result)
	}
	return result
}

// SafeFilename keeps a sender-supplied name as close to verbatim as the
// filesystem allows. Only path separators and control characters are replaced,
// and "." or ".." yield "".
func SafeFilename(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		if r < 32 || r == 127 || r == '/' || r == '\\' {
			sb.WriteRune('_')
			continue
		}
		sb.WriteRune(r)
	}

	result := sb.String()
	switch strings.TrimSpace(result) {
	case "", ".", "..":
		return ""
	}
	if len(result) > maxFilenameLength {
		result = truncatePreservingExtension(result)
	}
	return result
}

// FileNameFor picks the name an upload is stored under: the sender's file
// name, else the caption plus an extension inferred from the MIME type, else
// a timestamped placeholder.
func FileNameFor(fileName, caption, mimeType string, now time.Time) string {
	if name := SafeFilename(fileName); name != "" {
		return name
	}
	if name := SanitizeFilename(caption); name != "" {
		return SanitizeFilename(name + "." + domain.ExtensionForMIME(mimeType))
	}
	return fmt.Sprintf("video_%d.mp4", now.UnixMilli())
}

func truncatePreservingExtension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || len(ext) >= maxFilenameLength {
		return truncateToBytes(name, maxFilenameLength)
	}
	base := name[:len(name)-len(ext)]
	return truncateToBytes(base, maxFilenameLength-len(ext)) + ext
}

// truncateToBytes cuts s to at most maxBytes without splitting a rune.
func truncateToBytes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}
