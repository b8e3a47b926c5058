package normalize

import (
	"strings"
	"time"
)

// strictLayouts are tried in order: RSS-style feed dates first, then ISO,
// then US before EU slash dates, so ambiguous days resolve as MM/DD.
var strictLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
}

// permissiveLayouts back the generic last-resort parse.
var permissiveLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02 Jan 2006",
	"2 Jan 2006 15:04:05",
	"Jan 2, 2006",
}

// ParseDate parses heterogeneous date strings into one timestamp. When raw
// is empty or no syntax matches it returns the current time and false; the
// flag lets callers tell a genuine timestamp from the fallback, while stored
// articles keep the "now" value.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now(), false
	}

	for _, layout := range strictLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}

	for _, layout := range permissiveLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}

	return time.Now(), false
}
