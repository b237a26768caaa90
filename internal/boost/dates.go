// Package boost implements the boost message parsing and matching engine.
package boost

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MilosMiki/GPGSL-boosts/internal/common"
)

// The forum renders message timestamps in several human formats depending on
// age. Each pattern below is one recognized tier, tried in order.
var (
	reJustNow  = regexp.MustCompile(`(?i)^(just now|this minute)$`)
	reRelative = regexp.MustCompile(`(?i)(\d+)\s+(second|minute|hour|day|week)s?\s+ago`)
	reDayClock = regexp.MustCompile(`(?i)^(today|yesterday),\s*(\d{1,2}):(\d{2})(AM|PM)$`)
	reDateOnly = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	reDateTime = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})\s+(\d{1,2}):(\d{2})(AM|PM)$`)
)

// ParseMessageDate converts a forum timestamp into an absolute UTC instant.
// Relative formats are resolved against now. An unrecognized format is an
// error; it must never silently become "now".
func ParseMessageDate(text string, now time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	now = now.UTC().Truncate(time.Second)

	if reJustNow.MatchString(text) {
		return now, nil
	}

	if m := reRelative.FindStringSubmatch(text); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", common.ErrUnknownDateFormat, text)
		}
		switch strings.ToLower(m[2]) {
		case "second":
			return now.Add(-time.Duration(amount) * time.Second), nil
		case "minute":
			return now.Add(-time.Duration(amount) * time.Minute), nil
		case "hour":
			return now.Add(-time.Duration(amount) * time.Hour), nil
		case "day":
			return now.AddDate(0, 0, -amount), nil
		case "week":
			return now.AddDate(0, 0, -amount*7), nil
		}
	}

	if m := reDayClock.FindStringSubmatch(text); m != nil {
		hours := mustAtoi(m[2])
		minutes := mustAtoi(m[3])
		hours = to24Hour(hours, m[4])
		y, mo, d := now.Date()
		candidate := time.Date(y, mo, d, hours, minutes, 0, 0, time.UTC)
		if strings.EqualFold(m[1], "today") {
			return candidate, nil
		}
		// "yesterday" with a clock time still in the future means the forum
		// day ticked over relative to UTC; go back one extra day.
		if now.Before(candidate) {
			return candidate.AddDate(0, 0, -2), nil
		}
		return candidate.AddDate(0, 0, -1), nil
	}

	if m := reDateOnly.FindStringSubmatch(text); m != nil {
		return time.Date(mustAtoi(m[3]), time.Month(mustAtoi(m[1])), mustAtoi(m[2]), 0, 0, 0, 0, time.UTC), nil
	}

	if m := reDateTime.FindStringSubmatch(text); m != nil {
		hours := to24Hour(mustAtoi(m[4]), m[6])
		return time.Date(mustAtoi(m[3]), time.Month(mustAtoi(m[1])), mustAtoi(m[2]), hours, mustAtoi(m[5]), 0, 0, time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", common.ErrUnknownDateFormat, text)
}

// FormatMessageDate renders an instant the way the lineup tables display it.
func FormatMessageDate(t time.Time) string {
	return t.UTC().Format("02.01.2006 15:04")
}

// to24Hour converts a 12-hour clock reading to 24-hour.
func to24Hour(hours int, meridiem string) int {
	switch strings.ToUpper(meridiem) {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}
	return hours
}

// mustAtoi is safe on digit-only regexp captures.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
