package feed

import (
	"strings"
	"time"
)

// Layouts accepted for Atom date constructs. RFC 3339 is what the Atom
// spec mandates; the rest show up in real exports (zone-less
// timestamps, basic offsets, bare dates). The parser tolerates a
// fractional second after the seconds field with any of these.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate parses an Atom published/updated value. The boolean result
// stands in for an error so callers keep converting the remaining
// entries when one date is broken.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// formatRFC822 renders a date the way RSS 2.0 wants pubDate,
// e.g. "Wed, 28 Jun 2017 08:15:00 -0700".
func formatRFC822(t time.Time) string {
	return t.Format(time.RFC1123Z)
}
