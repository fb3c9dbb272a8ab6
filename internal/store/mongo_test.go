package store

import (
	"testing"
	"time"
)

func TestFormatTimeLexicographicOrder(t *testing.T) {
	a := time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)
	b := a.Add(30 * time.Second)
	c := a.Add(2 * time.Hour)

	fa, fb, fc := formatTime(a), formatTime(b), formatTime(c)
	if !(fa < fb && fb < fc) {
		t.Errorf("Formatted timestamps not in lexicographic order: %q %q %q", fa, fb, fc)
	}
}

func TestFormatTimeNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	local := time.Date(2026, 3, 10, 14, 0, 0, 0, loc)

	got := formatTime(local)
	want := "2026-03-10T09:00:00.000000000Z"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestParseTimeRoundTrip(t *testing.T) {
	orig := time.Date(2026, 3, 10, 9, 5, 30, 123000000, time.UTC)
	got := parseTime(formatTime(orig))
	if !got.Equal(orig) {
		t.Errorf("Round trip mismatch: %v vs %v", got, orig)
	}
}

func TestParseTimeLenient(t *testing.T) {
	tests := []struct {
		name  string
		input string
		zero  bool
	}{
		{"canonical", "2026-03-10T09:05:30.000000000Z", false},
		{"rfc3339 seconds", "2026-03-10T09:05:30Z", false},
		{"rfc3339 offset", "2026-03-10T09:05:30+05:00", false},
		{"garbage left as zero", "not-a-timestamp", true},
		{"empty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseTime(tc.input)
			if got.IsZero() != tc.zero {
				t.Errorf("parseTime(%q) = %v, zero expectation %v", tc.input, got, tc.zero)
			}
		})
	}
}
