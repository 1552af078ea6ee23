package render

import (
	"strings"
	"time"
)

// LongDateLayout is the long-form date used on every surface.
const LongDateLayout = "Monday, January 2, 2006"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatLongDate formats an ISO-8601 date as "Weekday, Month D, YYYY".
// The calendar date is taken as written, without converting time zones.
// Input that cannot be parsed is returned trimmed.
func FormatLongDate(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format(LongDateLayout)
		}
	}
	return iso
}
