package document

import (
	"strings"
	"time"
)

// TimestampLayout is the ISO 8601 form used for every date written to the file.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// Layouts accepted when reading dates back from the file; these are the
// spellings the YAML 1.1 timestamp type allows.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-1-2T15:4:5.999999999Z07:00",
	"2006-1-2t15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999 -07:00",
	"2006-1-2 15:4:5.999999999",
	"2006-1-2",
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// parseTimestamp parses a timestamp scalar. Values without a zone are UTC.
func parseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
