// File: miniconf/token.go
package miniconf

import (
	"strconv"
	"strings"
)

// tokenKind classifies one raw command-line token.
type tokenKind int

const (
	tokenUnknown tokenKind = iota
	tokenFlag              // --flag
	tokenShortFlag         // -f
	tokenValue             // anything else, including negative numerals
)

// classifyToken decides how a raw token participates in the scan. The
// numeric check must run before the flag branches: a token like "-3.14" is a
// value argument even though it starts with a dash.
func classifyToken(token string) tokenKind {
	if token == "" {
		return tokenUnknown
	}
	if strings.HasPrefix(token, "-") {
		if _, err := strconv.ParseFloat(token, 64); err == nil {
			return tokenValue
		}
	}
	if strings.HasPrefix(token, "--") {
		return tokenFlag
	}
	if strings.HasPrefix(token, "-") {
		return tokenShortFlag
	}
	return tokenValue
}
