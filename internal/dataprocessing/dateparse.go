package dataprocessing

import (
	"strings"
	"time"
)

// postedDateLayouts is ordered from most to least common in casting feeds.
var postedDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"20060102",
}

// ParsePostedDate leniently parses a posting date, trying each known layout
// in turn. The result is truncated to a UTC calendar date. Returns
// (zero, false) when no layout matches; such records are excluded from
// grouping rather than surfaced as errors.
func ParsePostedDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range postedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
