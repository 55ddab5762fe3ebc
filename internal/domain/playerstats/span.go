package playerstats

import (
	"strconv"
	"strings"
)

// Span is a career year range. Either bound may be unknown.
type Span struct {
	Start *int
	End   *int
}

// ParseSpan parses "start-end". Each side is parsed independently, so a malformed
// end keeps a valid start.
func ParseSpan(raw string) Span {
	if strings.TrimSpace(raw) == "" {
		return Span{}
	}

	parts := strings.SplitN(raw, "-", 2)
	span := Span{Start: parseYear(parts[0])}
	if len(parts) == 2 {
		span.End = parseYear(parts[1])
	}
	return span
}

func parseYear(v string) *int {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	year, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &year
}
