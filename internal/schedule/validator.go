package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrorKind identifies the class of schedule validation failure.
type ErrorKind string

const (
	// KindIncompleteEntry means a row has some but not all of day/start/end set.
	KindIncompleteEntry ErrorKind = "INCOMPLETE_ENTRY"
	// KindNoCompleteSchedule means no complete time slot remains after trimming.
	KindNoCompleteSchedule ErrorKind = "NO_COMPLETE_SCHEDULE"
	// KindInvalidDayOfWeek means a day field is not a number in 1-7.
	KindInvalidDayOfWeek ErrorKind = "INVALID_DAY_OF_WEEK"
	// KindInvalidTimeRange means an entry has start >= end or an unparseable time.
	KindInvalidTimeRange ErrorKind = "INVALID_TIME_RANGE"
	// KindDuplicateEntry means two entries share the same (day, start, end) triple.
	KindDuplicateEntry ErrorKind = "DUPLICATE_ENTRY"
	// KindOverlappingEntry means two same-day entries have overlapping intervals.
	KindOverlappingEntry ErrorKind = "OVERLAPPING_ENTRY"
)

// ValidationError is returned when a candidate schedule fails a check.
// Detail is user-facing and names the offending entries.
type ValidationError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Candidate is one row of the schedule editor. The UI allows incremental
// editing, so any field may still be empty.
type Candidate struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Room      string `json:"room"`
}

// Entry is a validated weekly occurrence. DayOfWeek is 1-7 with Monday=1;
// StartMin/EndMin are minutes since midnight derived from the HH:MM fields.
type Entry struct {
	DayOfWeek int    `json:"day_of_week,string"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Room      string `json:"room"`
	StartMin  int    `json:"-"`
	EndMin    int    `json:"-"`
}

var dayNames = [8]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayName returns the English weekday name for a 1-7 day number.
func DayName(day int) string {
	if day < 1 || day > 7 {
		return strconv.Itoa(day)
	}
	return dayNames[day]
}

func (e Entry) label() string {
	return fmt.Sprintf("%s %s-%s", DayName(e.DayOfWeek), e.StartTime, e.EndTime)
}

func (c Candidate) blank() bool {
	return strings.TrimSpace(c.DayOfWeek) == "" &&
		strings.TrimSpace(c.StartTime) == "" &&
		strings.TrimSpace(c.EndTime) == ""
}

func (c Candidate) complete() bool {
	return strings.TrimSpace(c.DayOfWeek) != "" &&
		strings.TrimSpace(c.StartTime) != "" &&
		strings.TrimSpace(c.EndTime) != ""
}

// Validate checks an ordered list of candidate rows and returns the
// normalized complete entries, or a *ValidationError on the first failing
// check. The checks run in a fixed order:
//
//  1. rows with every field empty are trimmed (unused editor rows)
//  2. partially filled rows are rejected, never silently dropped
//  3. at least one complete entry must remain
//  4. each entry needs parseable times with start strictly before end
//  5. no two entries may share the same (day, start, end) triple
//  6. no two same-day entries may overlap; touching endpoints are legal
//
// All time comparisons use integer minutes since midnight. Validate is pure
// and idempotent: feeding its own output back in yields the same entries.
func Validate(candidates []Candidate) ([]Entry, error) {
	entries := make([]Entry, 0, len(candidates))

	for i, c := range candidates {
		if c.blank() {
			continue
		}
		if !c.complete() {
			return nil, &ValidationError{
				Kind:   KindIncompleteEntry,
				Detail: fmt.Sprintf("schedule row %d is missing a day or time; complete it or remove the row", i+1),
			}
		}

		day, err := strconv.Atoi(strings.TrimSpace(c.DayOfWeek))
		if err != nil || day < 1 || day > 7 {
			return nil, &ValidationError{
				Kind:   KindInvalidDayOfWeek,
				Detail: fmt.Sprintf("schedule row %d has an invalid day of week %q", i+1, c.DayOfWeek),
			}
		}

		entries = append(entries, Entry{
			DayOfWeek: day,
			StartTime: strings.TrimSpace(c.StartTime),
			EndTime:   strings.TrimSpace(c.EndTime),
			Room:      strings.TrimSpace(c.Room),
		})
	}

	if len(entries) == 0 {
		return nil, &ValidationError{
			Kind:   KindNoCompleteSchedule,
			Detail: "a class needs at least one complete time slot",
		}
	}

	for i := range entries {
		e := &entries[i]

		start, err := ToMinutes(e.StartTime)
		if err != nil {
			return nil, &ValidationError{
				Kind:   KindInvalidTimeRange,
				Detail: fmt.Sprintf("%s on %s is not a valid HH:MM time", e.StartTime, DayName(e.DayOfWeek)),
			}
		}
		end, err := ToMinutes(e.EndTime)
		if err != nil {
			return nil, &ValidationError{
				Kind:   KindInvalidTimeRange,
				Detail: fmt.Sprintf("%s on %s is not a valid HH:MM time", e.EndTime, DayName(e.DayOfWeek)),
			}
		}
		if start >= end {
			return nil, &ValidationError{
				Kind:   KindInvalidTimeRange,
				Detail: fmt.Sprintf("%s must start before it ends", e.label()),
			}
		}

		e.StartMin = start
		e.EndMin = end
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		key := fmt.Sprintf("%d|%s|%s", e.DayOfWeek, e.StartTime, e.EndTime)
		if _, dup := seen[key]; dup {
			return nil, &ValidationError{
				Kind:   KindDuplicateEntry,
				Detail: fmt.Sprintf("%s appears more than once", e.label()),
			}
		}
		seen[key] = struct{}{}
	}

	if err := checkOverlaps(entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// checkOverlaps walks the entries of each day in start order and rejects any
// adjacent pair whose half-open intervals [start, end) intersect. Back-to-back
// slots (end == next start) are valid.
func checkOverlaps(entries []Entry) *ValidationError {
	byDay := make(map[int][]Entry)
	for _, e := range entries {
		byDay[e.DayOfWeek] = append(byDay[e.DayOfWeek], e)
	}

	for _, day := range byDay {
		sort.Slice(day, func(i, j int) bool { return day[i].StartMin < day[j].StartMin })
		for i := 1; i < len(day); i++ {
			prev, cur := day[i-1], day[i]
			if cur.StartMin < prev.EndMin {
				return &ValidationError{
					Kind:   KindOverlappingEntry,
					Detail: fmt.Sprintf("%s overlaps %s", cur.label(), prev.label()),
				}
			}
		}
	}
	return nil
}

// Candidates converts validated entries back into editor rows. Used when the
// stored schedule is loaded into the edit form and revalidated on save.
func Candidates(entries []Entry) []Candidate {
	out := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		out = append(out, Candidate{
			DayOfWeek: strconv.Itoa(e.DayOfWeek),
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Room:      e.Room,
		})
	}
	return out
}
