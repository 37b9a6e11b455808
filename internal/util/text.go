package util

import "strings"

// SanitizeText strips invalid UTF-8 sequences and NUL bytes. Raw model
// replies travel back to the browser inside JSON responses and must be
// valid UTF-8 for that.
func SanitizeText(value string) string {
	if value == "" {
		return value
	}

	sanitized := strings.ToValidUTF8(value, "")
	return strings.ReplaceAll(sanitized, "\x00", "")
}
