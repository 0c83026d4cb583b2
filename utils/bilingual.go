package utils

import "strings"

// FallbackEN returns the English value, or the Indonesian one when the
// English value is blank. Applied when records are written, so stored rows
// always carry both columns populated.
func FallbackEN(indonesian, english string) string {
	if strings.TrimSpace(english) == "" {
		return indonesian
	}
	return english
}
