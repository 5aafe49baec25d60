package wizard

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	contriberrors "github.com/ywarnier/oss-contrib/internal/errors"
)

// DateLayout is the form of the default start date shown to the user.
const DateLayout = "2006-01-02"

// NonEmpty trims value and rejects it when nothing is left.
func NonEmpty(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", contriberrors.EmptyValue()
	}
	return value, nil
}

// ParseDate reads a date or date-time in any common spelling and returns it
// as a UTC instant truncated to the second. Values without a zone are UTC.
// The words now, today, yesterday and tomorrow are relative to now.
func ParseDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, contriberrors.InvalidDate(value)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch strings.ToLower(value) {
	case "now":
		return now.UTC().Truncate(time.Second), nil
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, contriberrors.InvalidDate(value)
	}
	return t.UTC().Truncate(time.Second), nil
}

// Description trims a multi-line answer and strips trailing blanks from
// each line so it can be written as a literal block.
func Description(block string) (string, error) {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return NonEmpty(strings.Join(lines, "\n"))
}

// Links splits a block of text into one link per line. Lines are trimmed
// and blank lines dropped; at least one link must remain.
func Links(block string) ([]string, error) {
	var links []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			links = append(links, line)
		}
	}
	if len(links) == 0 {
		return nil, contriberrors.EmptyValue()
	}
	return links, nil
}

// Choose resolves an answer against a choice list. The answer may be a
// label or an index; labels are matched first, in list order.
// An empty answer is not resolved here; sessions substitute the default.
func Choose(choices []string, answer, invalidFormat string) (int, error) {
	answer = strings.TrimSpace(answer)
	for i, c := range choices {
		if c == answer {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(answer); err == nil && i >= 0 && i < len(choices) {
		return i, nil
	}
	return -1, contriberrors.InvalidChoice(invalidFormat, answer)
}
