package schedule

import (
	"errors"
	"strings"
	"testing"
)

func mon(start, end string) Candidate {
	return Candidate{DayOfWeek: "1", StartTime: start, EndTime: end, Room: "A101"}
}

func kindOf(t *testing.T, err error) ErrorKind {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v (%T), want *ValidationError", err, err)
	}
	return ve.Kind
}

func TestValidateHappyPath(t *testing.T) {
	entries, err := Validate([]Candidate{
		mon("09:00", "10:00"),
		{DayOfWeek: "3", StartTime: "13:30", EndTime: "15:00", Room: "online"},
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].StartMin != 540 || entries[0].EndMin != 600 {
		t.Errorf("entry 0 minutes = %d-%d, want 540-600", entries[0].StartMin, entries[0].EndMin)
	}
	if entries[1].DayOfWeek != 3 || entries[1].Room != "online" {
		t.Errorf("entry 1 = %+v", entries[1])
	}
}

func TestValidateTrimsBlankRows(t *testing.T) {
	entries, err := Validate([]Candidate{
		{},
		mon("09:00", "10:00"),
		{Room: "left over room text"},
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (blank rows trimmed)", len(entries))
	}
}

func TestValidatePartialRowBlocksEvenWithCompleteRow(t *testing.T) {
	_, err := Validate([]Candidate{
		{DayOfWeek: "1"},
		{DayOfWeek: "2", StartTime: "09:00", EndTime: "10:00"},
	})
	if kind := kindOf(t, err); kind != KindIncompleteEntry {
		t.Fatalf("kind = %s, want %s", kind, KindIncompleteEntry)
	}
}

func TestValidateNoCompleteSchedule(t *testing.T) {
	for _, in := range [][]Candidate{nil, {}, {{}, {}}} {
		_, err := Validate(in)
		if kind := kindOf(t, err); kind != KindNoCompleteSchedule {
			t.Fatalf("kind = %s, want %s", kind, KindNoCompleteSchedule)
		}
	}
}

func TestValidateInvalidDayOfWeek(t *testing.T) {
	cases := []struct {
		name string
		day  string
	}{
		{"zero", "0"},
		{"eight", "8"},
		{"negative", "-1"},
		{"name instead of number", "Mon"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate([]Candidate{
				{DayOfWeek: tc.day, StartTime: "09:00", EndTime: "10:00"},
			})
			if kind := kindOf(t, err); kind != KindInvalidDayOfWeek {
				t.Fatalf("kind = %s, want %s", kind, KindInvalidDayOfWeek)
			}
		})
	}
}

func TestValidateTimeRange(t *testing.T) {
	cases := []struct {
		name  string
		entry Candidate
	}{
		{"start equals end", mon("09:00", "09:00")},
		{"start after end", mon("10:00", "09:00")},
		{"unparseable start", mon("9am", "10:00")},
		{"unparseable end", mon("09:00", "25:00")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate([]Candidate{tc.entry})
			if kind := kindOf(t, err); kind != KindInvalidTimeRange {
				t.Fatalf("kind = %s, want %s", kind, KindInvalidTimeRange)
			}
		})
	}
}

func TestValidateDuplicateEntry(t *testing.T) {
	_, err := Validate([]Candidate{
		mon("09:00", "10:00"),
		mon("09:00", "10:00"),
	})
	if kind := kindOf(t, err); kind != KindDuplicateEntry {
		t.Fatalf("kind = %s, want %s", kind, KindDuplicateEntry)
	}
}

func TestValidateOverlap(t *testing.T) {
	_, err := Validate([]Candidate{
		mon("09:00", "10:00"),
		mon("09:30", "10:30"),
	})
	if kind := kindOf(t, err); kind != KindOverlappingEntry {
		t.Fatalf("kind = %s, want %s", kind, KindOverlappingEntry)
	}

	var ve *ValidationError
	errors.As(err, &ve)
	if !strings.Contains(ve.Detail, "09:30") || !strings.Contains(ve.Detail, "09:00") {
		t.Errorf("detail %q does not name both conflicting entries", ve.Detail)
	}
}

func TestValidateTouchingEntriesAreLegal(t *testing.T) {
	entries, err := Validate([]Candidate{
		mon("09:00", "10:00"),
		mon("10:00", "11:00"),
	})
	if err != nil {
		t.Fatalf("back-to-back slots rejected: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
}

func TestValidateSameTimesOnDifferentDays(t *testing.T) {
	_, err := Validate([]Candidate{
		{DayOfWeek: "1", StartTime: "09:00", EndTime: "10:00"},
		{DayOfWeek: "2", StartTime: "09:00", EndTime: "10:00"},
	})
	if err != nil {
		t.Fatalf("same slot on different days rejected: %v", err)
	}
}

// Validating the normalized output again must accept it and preserve it.
func TestValidateIdempotent(t *testing.T) {
	first, err := Validate([]Candidate{
		{},
		{DayOfWeek: "5", StartTime: "07:15", EndTime: "08:45", Room: "B2"},
		mon("10:00", "11:00"),
		mon("09:00", "10:00"),
	})
	if err != nil {
		t.Fatalf("first pass failed: %v", err)
	}

	second, err := Validate(Candidates(first))
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("second pass has %d entries, first %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d changed across passes: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// Whatever passes validation must be pairwise non-overlapping per day with
// strictly positive durations.
func TestValidateOutputInvariants(t *testing.T) {
	entries, err := Validate([]Candidate{
		mon("13:00", "14:00"),
		mon("09:00", "10:00"),
		mon("10:00", "11:30"),
		{DayOfWeek: "4", StartTime: "08:00", EndTime: "09:40", Room: "Lab 1"},
	})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	for _, e := range entries {
		if e.StartMin >= e.EndMin {
			t.Errorf("entry %s has non-positive duration", e.label())
		}
	}
	for i, a := range entries {
		for j, b := range entries {
			if i == j || a.DayOfWeek != b.DayOfWeek {
				continue
			}
			if a.StartMin < b.EndMin && b.StartMin < a.EndMin {
				t.Errorf("entries %s and %s overlap", a.label(), b.label())
			}
		}
	}
}
