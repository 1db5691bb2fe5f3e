package schedule

import "fmt"

// ParseError reports a wall-clock string that is not a valid HH:MM time.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time %q: expected HH:MM in 24-hour format", e.Input)
}

// ToMinutes converts a 24-hour "HH:MM" string to minutes since midnight.
// Hours must be 00-23 and minutes 00-59; anything else returns *ParseError.
func ToMinutes(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, &ParseError{Input: clock}
	}

	hours, ok := twoDigits(clock[0], clock[1])
	if !ok || hours > 23 {
		return 0, &ParseError{Input: clock}
	}

	minutes, ok := twoDigits(clock[3], clock[4])
	if !ok || minutes > 59 {
		return 0, &ParseError{Input: clock}
	}

	return hours*60 + minutes, nil
}

func twoDigits(hi, lo byte) (int, bool) {
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}
	return int(hi-'0')*10 + int(lo-'0'), true
}
