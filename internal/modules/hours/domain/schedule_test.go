package domain

import "testing"

func TestEmptyDaySchedule(t *testing.T) {
	// A present-but-empty entry never occurs from parsing, but the model must
	// treat it as closed rather than misbehave.
	resto := Restaurant{
		Name:     "Edge Case",
		Schedule: WeekSchedule{Monday: {}},
	}
	if resto.OpenAt(Monday, TimeOfDay{Hour: 12}) {
		t.Fatal("empty day schedule should read as closed")
	}
}

func TestDayScheduleOpenAtAnyRange(t *testing.T) {
	day := DaySchedule{Ranges: []TimeRange{
		{Start: TimeOfDay{Hour: 9}, End: TimeOfDay{Hour: 11}},
		{Start: TimeOfDay{Hour: 20}, End: TimeOfDay{Hour: 22}},
	}}
	if !day.OpenAt(TimeOfDay{Hour: 10}) || !day.OpenAt(TimeOfDay{Hour: 21}) {
		t.Fatal("expected both ranges to report open")
	}
	if day.OpenAt(TimeOfDay{Hour: 14}) {
		t.Fatal("expected closed between ranges")
	}
}
