package logger

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// botTokenSegment matches the credential path element of Bot API URLs, for
// both method calls (/bot<token>/) and file downloads (/file/bot<token>/).
var botTokenSegment = regexp.MustCompile(`/bot[^/]+`)

var shortEscapes = map[rune]string{
	'\n':   `\n`,
	'\r':   `\r`,
	'\t':   `\t`,
	'\x00': `\x00`,
}

// SanitizeForLog escapes control characters in user supplied text so a file
// name or chat message cannot forge log lines or drive the terminal.
// Printable Unicode is kept as is.
func SanitizeForLog(s string) string {
	if !strings.ContainsFunc(s, isControl) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		if !isControl(r) {
			b.WriteRune(r)
			continue
		}
		if esc, ok := shortEscapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		fmt.Fprintf(&b, `\x%02x`, r)
	}
	return b.String()
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// RedactURLError strips Bot API credentials from the URL quoted by a transport
// error so it can be logged and stored. When err wraps the transport error,
// only the transport error is kept. Other errors are returned unchanged.
func RedactURLError(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	return &url.Error{Op: ue.Op, URL: RedactURL(ue.URL), Err: ue.Err}
}

// RedactURL replaces the bot token in a Bot API URL.
func RedactURL(raw string) string {
	return botTokenSegment.ReplaceAllString(raw, "/bot<redacted>")
}
