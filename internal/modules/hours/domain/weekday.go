package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Weekday indexes the days of the week starting at Monday, matching the order
// used by the dataset grammar and the query API.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const weekdayCount = 7

var weekdayNames = [weekdayCount]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// dayTokens maps the abbreviations the dataset uses onto weekdays. Tuesday and
// Thursday appear both in three and four/five letter forms.
var dayTokens = map[string]Weekday{
	"mon":   Monday,
	"tue":   Tuesday,
	"tues":  Tuesday,
	"wed":   Wednesday,
	"thu":   Thursday,
	"thurs": Thursday,
	"fri":   Friday,
	"sat":   Saturday,
	"sun":   Sunday,
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Valid reports whether the weekday is inside the Monday..Sunday range.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// ParseDayList resolves a comma-separated list of day tokens and day ranges
// into a sorted, deduplicated weekday slice. Ranges are inclusive and may wrap
// past Sunday ("Sat-Mon" covers Saturday, Sunday and Monday).
func ParseDayList(text string) ([]Weekday, error) {
	seen := make(map[Weekday]struct{})
	for _, segment := range strings.Split(strings.ToLower(strings.TrimSpace(text)), ",") {
		segment = strings.TrimSpace(segment)
		if strings.Contains(segment, "-") {
			startRaw, endRaw, _ := strings.Cut(segment, "-")
			start, okStart := dayTokens[strings.TrimSpace(startRaw)]
			end, okEnd := dayTokens[strings.TrimSpace(endRaw)]
			if !okStart || !okEnd {
				return nil, fmt.Errorf("%w in range: %s", ErrUnknownDay, segment)
			}
			if start <= end {
				for day := start; day <= end; day++ {
					seen[day] = struct{}{}
				}
			} else {
				for day := start; day <= Sunday; day++ {
					seen[day] = struct{}{}
				}
				for day := Monday; day <= end; day++ {
					seen[day] = struct{}{}
				}
			}
			continue
		}
		day, ok := dayTokens[segment]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDay, segment)
		}
		seen[day] = struct{}{}
	}

	days := make([]Weekday, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days, nil
}
