package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock instant without a date, ordered by (hour, minute).
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	return t.Minute < other.Minute
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return other.Before(t)
}

// TimeRange is one open interval within a day. Start later than End marks an
// overnight range that spills past midnight into the next calendar day.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Contains reports whether the instant falls inside the range. Both endpoints
// are inclusive; overnight ranges match instants on either side of midnight.
func (r TimeRange) Contains(t TimeOfDay) bool {
	if !r.Start.After(r.End) {
		return !t.Before(r.Start) && !t.After(r.End)
	}
	return !t.Before(r.Start) || !t.After(r.End)
}

// clockPattern accepts a 1-2 digit hour, an optional two-digit minute and a
// mandatory meridiem suffix, mirroring the dataset's clock tokens.
var clockPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)

// ParseTimeOfDay converts clock text such as "11:30 am" into a TimeOfDay.
// "12 am" is midnight and "12 pm" is noon; those literals are resolved before
// the generic pattern runs.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	switch normalized {
	case "12 am", "12:00 am":
		return TimeOfDay{}, nil
	case "12 pm", "12:00 pm":
		return TimeOfDay{Hour: 12}, nil
	}

	match := clockPattern.FindStringSubmatch(normalized)
	if match == nil {
		return TimeOfDay{}, fmt.Errorf("%w: %s", ErrMalformedTime, text)
	}

	hour, _ := strconv.Atoi(match[1])
	minute := 0
	if match[2] != "" {
		minute, _ = strconv.Atoi(match[2])
	}

	switch match[3] {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %s", ErrMalformedTime, text)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeRange splits range text on its first "-" and parses both endpoints.
func ParseTimeRange(text string) (TimeRange, error) {
	startRaw, endRaw, found := strings.Cut(text, "-")
	if !found {
		return TimeRange{}, fmt.Errorf("%w: %s", ErrMissingSeparator, text)
	}
	start, err := ParseTimeOfDay(strings.TrimSpace(startRaw))
	if err != nil {
		return TimeRange{}, err
	}
	end, err := ParseTimeOfDay(strings.TrimSpace(endRaw))
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}
