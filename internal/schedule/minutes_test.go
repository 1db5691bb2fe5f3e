package schedule

import (
	"errors"
	"testing"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"13:05", 785},
		{"23:59", 1439},
	}

	for _, tc := range cases {
		got, err := ToMinutes(tc.in)
		if err != nil {
			t.Errorf("ToMinutes(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestToMinutesRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"", "9:00", "09:0", "0900", "09-00", "24:00", "09:60", "ab:cd", "09:00 ", "-1:00",
	}

	for _, in := range bad {
		_, err := ToMinutes(in)
		if err == nil {
			t.Errorf("ToMinutes(%q) accepted malformed input", in)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ToMinutes(%q) error = %T, want *ParseError", in, err)
		}
	}
}
