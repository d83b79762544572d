package cmd

import (
	"fmt"
	"time"
)

// timeLayouts are the accepted flag formats, tried in order. Bare dates
// parse to midnight UTC.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTimeFlag parses a --birth/--date value. All values are interpreted
// on a single UTC time scale; callers wanting local-time semantics must
// normalize before invoking the CLI.
func parseTimeFlag(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q: want RFC3339 or YYYY-MM-DD", value)
}
