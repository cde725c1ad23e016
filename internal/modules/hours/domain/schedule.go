package domain

// DaySchedule holds the open intervals for a single weekday. Split shifts
// produce more than one range; openness is an OR across all of them.
type DaySchedule struct {
	Ranges []TimeRange
}

// OpenAt reports whether any range covers the instant.
func (s DaySchedule) OpenAt(t TimeOfDay) bool {
	for _, r := range s.Ranges {
		if r.Contains(t) {
			return true
		}
	}
	return false
}

// WeekSchedule maps weekdays to their open intervals. A weekday with no entry
// is closed all day, which is distinct from an entry with an empty range list.
type WeekSchedule map[Weekday]DaySchedule

// Restaurant pairs a venue name with its weekly schedule.
type Restaurant struct {
	Name     string
	Schedule WeekSchedule
}

// OpenAt reports whether the restaurant is open on the given weekday at the
// given instant.
func (r Restaurant) OpenAt(day Weekday, t TimeOfDay) bool {
	schedule, ok := r.Schedule[day]
	if !ok {
		return false
	}
	return schedule.OpenAt(t)
}
