package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// timestampLayouts covers RFC 3339 and the zone-less ISO form the backend
// emits for naive UTC datetimes.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp parses a backend timestamp. Values without a zone are
// taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// FormatAge renders a backend timestamp relative to now ("3 hours ago").
// Unparseable values are returned unchanged.
func FormatAge(s string, now time.Time) string {
	t, err := ParseTimestamp(s)
	if err != nil {
		return s
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
