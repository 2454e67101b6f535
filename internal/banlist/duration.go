package banlist

import (
	"regexp"
	"strconv"
)

// Millisecond factors for the supported duration units.
//
// A month is approximated as 30 days.
const (
	msPerMinute int64 = 60 * 1000
	msPerHour   int64 = 60 * msPerMinute
	msPerDay    int64 = 24 * msPerHour
	msPerMonth  int64 = 30 * msPerDay
)

// "mo" has to come before "m" in the alternation, otherwise months
// would never match (the regexp engine would take "m" and leave a
// stray "o" behind).
var durationPattern = regexp.MustCompile(`^(\d+)(mo|[dhm])$`)

// DurationToMs converts a compact duration token like "14d", "3h",
// "45m" or "2mo" into milliseconds.
//
// Returns false for any token that does not match the grammar. Callers
// should treat that as a validation failure, there is no error value.
func DurationToMs(token string) (int64, bool) {
	match := durationPattern.FindStringSubmatch(token)
	if match == nil {
		return 0, false
	}

	amount, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		// Only happens when the integer part overflows int64.
		return 0, false
	}

	switch match[2] {
	case "d":
		return amount * msPerDay, true
	case "h":
		return amount * msPerHour, true
	case "m":
		return amount * msPerMinute, true
	case "mo":
		return amount * msPerMonth, true
	default:
		return 0, false
	}
}
