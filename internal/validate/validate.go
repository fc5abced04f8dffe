package validate

import (
	"strings"
	"time"
)

// ID validates a path-parameter id. Only non-emptiness is checked so ids
// from the pre-UUID integer schema keep resolving.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Text validates a field that must be non-empty after trimming
// (name, category, ownerID).
func Text(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Date accepts RFC 3339 or a bare YYYY-MM-DD day and returns the parsed
// time. Anything else is rejected rather than stored as a bogus timestamp.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
