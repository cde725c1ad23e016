package domain

import (
	"errors"
	"testing"
)

func TestParseHoursSingleSlot(t *testing.T) {
	schedule, err := ParseHours("Mon-Sun 11:00 am - 10 pm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(schedule) != weekdayCount {
		t.Fatalf("expected all 7 weekdays, got %d", len(schedule))
	}
	for day := Monday; day <= Sunday; day++ {
		entry, ok := schedule[day]
		if !ok {
			t.Fatalf("missing weekday %s", day)
		}
		if len(entry.Ranges) != 1 {
			t.Fatalf("%s: expected one range, got %d", day, len(entry.Ranges))
		}
		slot := entry.Ranges[0]
		if slot.Start != (TimeOfDay{Hour: 11}) || slot.End != (TimeOfDay{Hour: 22}) {
			t.Fatalf("%s: unexpected range %v", day, slot)
		}
	}
}

func TestParseHoursMultiplePeriods(t *testing.T) {
	schedule, err := ParseHours("Mon-Thu, Sun 11:30 am - 10 pm / Fri-Sat 11:30 am - 11 pm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, day := range []Weekday{Monday, Tuesday, Wednesday, Thursday, Sunday} {
		entry, ok := schedule[day]
		if !ok {
			t.Fatalf("missing weekday %s", day)
		}
		if entry.Ranges[0].End != (TimeOfDay{Hour: 22}) {
			t.Fatalf("%s: expected 22:00 close, got %v", day, entry.Ranges[0].End)
		}
	}
	for _, day := range []Weekday{Friday, Saturday} {
		entry, ok := schedule[day]
		if !ok {
			t.Fatalf("missing weekday %s", day)
		}
		if entry.Ranges[0].End != (TimeOfDay{Hour: 23}) {
			t.Fatalf("%s: expected 23:00 close, got %v", day, entry.Ranges[0].End)
		}
	}
}

func TestParseHoursOvernight(t *testing.T) {
	schedule, err := ParseHours("Mon-Wed 5 pm - 2 am")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, day := range []Weekday{Monday, Tuesday, Wednesday} {
		slot := schedule[day].Ranges[0]
		if slot.Start != (TimeOfDay{Hour: 17}) || slot.End != (TimeOfDay{Hour: 2}) {
			t.Fatalf("%s: unexpected range %v", day, slot)
		}
	}
}

func TestParseHoursUnlistedDaysStayClosed(t *testing.T) {
	schedule, err := ParseHours("Mon-Fri 9 am - 5 pm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(schedule) != 5 {
		t.Fatalf("expected 5 weekdays, got %d", len(schedule))
	}
	for _, day := range []Weekday{Saturday, Sunday} {
		if _, ok := schedule[day]; ok {
			t.Fatalf("%s should be absent from the schedule", day)
		}
	}
}

func TestParseHoursSplitShifts(t *testing.T) {
	schedule, err := ParseHours("Mon 11 am - 2 pm / Mon 5 pm - 10 pm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry := schedule[Monday]
	if len(entry.Ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(entry.Ranges))
	}
	if !entry.OpenAt(TimeOfDay{Hour: 12}) || !entry.OpenAt(TimeOfDay{Hour: 18}) {
		t.Fatal("expected both shifts open")
	}
	if entry.OpenAt(TimeOfDay{Hour: 15}) {
		t.Fatal("expected gap between shifts closed")
	}
}

func TestParseHoursCompactClockTokens(t *testing.T) {
	// Three-token time ranges resolve through the right-anchored split alone.
	schedule, err := ParseHours("Mon-Fri 11am - 10pm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slot := schedule[Monday].Ranges[0]
	if slot.Start != (TimeOfDay{Hour: 11}) || slot.End != (TimeOfDay{Hour: 22}) {
		t.Fatalf("unexpected range %v", slot)
	}
}

func TestParseHoursRejectsUnparsablePeriods(t *testing.T) {
	inputs := []string{
		"open whenever",
		"Mon-Fri",
		"Funday 11:00 am - 10 pm",
	}

	for _, input := range inputs {
		if _, err := ParseHours(input); !errors.Is(err, ErrUnparsableHours) {
			t.Fatalf("ParseHours(%q) expected ErrUnparsableHours, got %v", input, err)
		}
	}
}

func TestParseHoursSkipsEmptyPeriods(t *testing.T) {
	schedule, err := ParseHours("Mon 9 am - 5 pm / ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(schedule) != 1 {
		t.Fatalf("expected 1 weekday, got %d", len(schedule))
	}
}

func TestRestaurantOpenAt(t *testing.T) {
	schedule, err := ParseHours("Mon-Sun 11:00 am - 10 pm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resto := Restaurant{Name: "Test Restaurant", Schedule: schedule}

	if !resto.OpenAt(Monday, TimeOfDay{Hour: 15, Minute: 30}) {
		t.Fatal("expected open Monday afternoon")
	}
	if resto.OpenAt(Monday, TimeOfDay{Hour: 3}) {
		t.Fatal("expected closed Monday at 03:00")
	}
	if resto.OpenAt(Weekday(-1), TimeOfDay{Hour: 12}) {
		t.Fatal("expected closed for absent weekday key")
	}
}
