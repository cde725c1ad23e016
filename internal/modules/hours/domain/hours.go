package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// periodSplit is the resolved boundary between a period's day-list text and
// its time-range text.
type periodSplit struct {
	days []Weekday
	slot TimeRange
}

// clockToken locates the first clock token inside a period, used by the
// fallback split when the right-anchored split cannot resolve the boundary.
var clockToken = regexp.MustCompile(`(?i)\d{1,2}(?::\d{2})?\s*\b(?:am|pm)\b`)

// ParseHours converts an hours string such as
// "Mon-Thu, Sun 11:30 am - 10 pm / Fri-Sat 11:30 am - 11 pm" into a weekly
// schedule. Periods are separated by "/"; each period is a day list followed
// by a time range, with no fixed lexical boundary between the two.
func ParseHours(text string) (WeekSchedule, error) {
	schedule := make(WeekSchedule)

	for _, period := range strings.Split(text, "/") {
		period = strings.TrimSpace(period)
		if period == "" {
			continue
		}

		split, ok := splitPeriodAnchored(period)
		if !ok {
			split, ok = splitPeriodByClockToken(period)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnparsableHours, period)
		}

		for _, day := range split.days {
			entry := schedule[day]
			entry.Ranges = append(entry.Ranges, split.slot)
			schedule[day] = entry
		}
	}

	return schedule, nil
}

// splitPeriodAnchored assumes the time range renders as the trailing three
// whitespace-delimited tokens and everything before them is the day list. The
// assumption only holds for compact clock tokens ("11am - 10pm"), so failure
// here is common and simply defers to the clock-token split.
func splitPeriodAnchored(period string) (periodSplit, bool) {
	tokens := strings.Fields(period)
	if len(tokens) < 4 {
		return periodSplit{}, false
	}
	daysText := strings.Join(tokens[:len(tokens)-3], " ")
	rangeText := strings.Join(tokens[len(tokens)-3:], " ")
	return parsePeriodParts(daysText, rangeText)
}

// splitPeriodByClockToken cuts the period at the first clock token: everything
// before it is the day list, everything from it onward is the time range. This
// is the general path and handles variable-width day lists.
func splitPeriodByClockToken(period string) (periodSplit, bool) {
	loc := clockToken.FindStringIndex(period)
	if loc == nil {
		return periodSplit{}, false
	}
	daysText := strings.TrimSpace(period[:loc[0]])
	rangeText := strings.TrimSpace(period[loc[0]:])
	return parsePeriodParts(daysText, rangeText)
}

func parsePeriodParts(daysText, rangeText string) (periodSplit, bool) {
	days, err := ParseDayList(daysText)
	if err != nil {
		return periodSplit{}, false
	}
	slot, err := ParseTimeRange(rangeText)
	if err != nil {
		return periodSplit{}, false
	}
	return periodSplit{days: days, slot: slot}, true
}
