package daterange

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// specifierPattern matches one "number [whitespace] unit" specifier. The
// unit token is letters only.
var specifierPattern = regexp.MustCompile(`^(\d+)\s*([A-Za-z]+)$`)

// unitAliases maps every accepted unit alias (lowercase) to its canonical
// unit name. Months and years are deliberately absent: a time.Duration has
// no fixed length for them.
var unitAliases = map[string]string{
	"d": "days", "day": "days", "days": "days",

	"h": "hours", "hr": "hours", "hrs": "hours",
	"hour": "hours", "hours": "hours",

	"m": "minutes", "min": "minutes", "mins": "minutes",
	"minute": "minutes", "minutes": "minutes",

	"s": "seconds", "sec": "seconds", "secs": "seconds",
	"second": "seconds", "seconds": "seconds",

	"ms": "microseconds", "microsec": "microseconds", "microsecs": "microseconds",
	"microsecond": "microseconds", "microseconds": "microseconds",
}

// unitSizes maps canonical unit names to their fixed duration.
var unitSizes = map[string]time.Duration{
	"days":         Day,
	"hours":        time.Hour,
	"minutes":      time.Minute,
	"seconds":      time.Second,
	"microseconds": time.Microsecond,
}

// ParseDelta builds a time.Duration from a short, friendly spec string.
//
// A typical (but very precise) spec string looks like this:
//
//	"1 day, 4 hours, 5 minutes, 3 seconds, 120 microseconds"
//
// The spec is a series of comma-separated specifiers, each a number and a
// unit of time, optionally separated by whitespace. Units are matched
// case-insensitively:
//
//   - days: d, day, days
//   - hours: h, hr, hrs, hour, hours
//   - minutes: m, min, mins, minute, minutes
//   - seconds: s, sec, secs, second, seconds
//   - microseconds: ms, microsec, microsecs, microsecond, microseconds
//
// Specifiers naming the same unit accumulate additively, so "1 day, 2 days"
// equals "3 days". A malformed specifier returns an InvalidSpecifier error;
// an unknown unit returns an InvalidUnit error.
func ParseDelta(spec string) (time.Duration, error) {
	totals := make(map[string]int64, len(unitSizes))

	for _, raw := range strings.Split(spec, ",") {
		specifier := strings.TrimSpace(raw)

		match := specifierPattern.FindStringSubmatch(specifier)
		if match == nil {
			return 0, InvalidSpecifier(specifier)
		}

		count, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			return 0, InvalidSpecifier(specifier)
		}

		canonical, ok := unitAliases[strings.ToLower(match[2])]
		if !ok {
			return 0, InvalidUnit(match[2])
		}

		totals[canonical] += count
	}

	var delta time.Duration
	for canonical, count := range totals {
		delta += time.Duration(count) * unitSizes[canonical]
	}
	return delta, nil
}
