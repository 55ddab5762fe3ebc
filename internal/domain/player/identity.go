package player

import (
	"regexp"
	"strings"
)

var identityPattern = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)$`)

// ParseIdentity splits a raw "Name (Country)" token. Tokens without a trailing
// parenthesized suffix resolve to the whole trimmed string and UnknownCountry.
func ParseIdentity(raw string) (name, country string) {
	raw = strings.TrimSpace(raw)
	if m := identityPattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return raw, UnknownCountry
}
