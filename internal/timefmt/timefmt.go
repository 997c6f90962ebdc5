// Package timefmt renders elapsed-seconds counters for the timer pane and
// the clock-out summary. Decomposition is pure base-60/24 arithmetic, not
// calendar-aware.
package timefmt

import "fmt"

func split(total uint64) (days, hours, mins, secs uint64) {
	secs = total % 60
	mins = (total / 60) % 60
	hours = (total / 3600) % 24
	days = total / 86400
	return days, hours, mins, secs
}

// Compact renders the largest-nonzero-unit tier with colon separators:
// "D:HH:MM:SS", "HH:MM:SS", "MM:SS", or "SS". Fields below the leading one
// are zero-padded to two digits; the leading field is unpadded.
func Compact(total uint64) string {
	days, hours, mins, secs := split(total)
	switch {
	case days > 0:
		return fmt.Sprintf("%d:%02d:%02d:%02d", days, hours, mins, secs)
	case hours > 0:
		return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
	case mins > 0:
		return fmt.Sprintf("%02d:%02d", mins, secs)
	default:
		return fmt.Sprintf("%02d", secs)
	}
}

// Verbose renders the same tier as comma-separated unit phrases down to
// seconds, e.g. "2 Hours, 5 Minutes, 3 Seconds".
func Verbose(total uint64) string {
	days, hours, mins, secs := split(total)
	switch {
	case days > 0:
		return fmt.Sprintf("%d Days, %d Hours, %d Minutes, %d Seconds", days, hours, mins, secs)
	case hours > 0:
		return fmt.Sprintf("%d Hours, %d Minutes, %d Seconds", hours, mins, secs)
	case mins > 0:
		return fmt.Sprintf("%d Minutes, %d Seconds", mins, secs)
	default:
		return fmt.Sprintf("%d Seconds", secs)
	}
}
