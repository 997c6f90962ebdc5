package timefmt_test

import (
	"testing"

	"workwatch/internal/timefmt"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, "00"},
		{5, "05"},
		{59, "59"},
		{60, "01:00"},
		{125, "02:05"},
		{3600, "01:00:00"},
		{3725, "01:02:05"},
		{86400, "1:00:00:00"},
		{90065, "1:01:01:05"},
		{10*86400 + 5, "10:00:00:05"},
	}
	for _, tt := range tests {
		got := timefmt.Compact(tt.seconds)
		if got != tt.want {
			t.Errorf("Compact(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestVerbose(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, "0 Seconds"},
		{5, "5 Seconds"},
		{125, "2 Minutes, 5 Seconds"},
		{3725, "1 Hours, 2 Minutes, 5 Seconds"},
		{7503, "2 Hours, 5 Minutes, 3 Seconds"},
		{90065, "1 Days, 1 Hours, 1 Minutes, 5 Seconds"},
	}
	for _, tt := range tests {
		got := timefmt.Verbose(tt.seconds)
		if got != tt.want {
			t.Errorf("Verbose(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestTierSelectionMatchesAcrossModes(t *testing.T) {
	// Both presentations must elide the same leading units.
	for _, s := range []uint64{0, 1, 59, 60, 3599, 3600, 86399, 86400} {
		compact := timefmt.Compact(s)
		verbose := timefmt.Verbose(s)
		wantColons := 0
		switch {
		case s >= 86400:
			wantColons = 3
		case s >= 3600:
			wantColons = 2
		case s >= 60:
			wantColons = 1
		}
		gotColons := 0
		for _, r := range compact {
			if r == ':' {
				gotColons++
			}
		}
		if gotColons != wantColons {
			t.Errorf("Compact(%d) = %q: %d colons, want %d", s, compact, gotColons, wantColons)
		}
		gotCommas := 0
		for _, r := range verbose {
			if r == ',' {
				gotCommas++
			}
		}
		if gotCommas != wantColons {
			t.Errorf("Verbose(%d) = %q: %d commas, want %d", s, verbose, gotCommas, wantColons)
		}
	}
}
