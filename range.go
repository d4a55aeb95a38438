// Package daterange provides lazy calendar sequences and a parser for
// short, friendly duration spec strings.
//
// A Range yields successive time.Time values from a start point, optionally
// up to and including a bound, advancing by a fixed step (1 day by default).
// ParseDelta converts strings such as "1 day, 4 hours" into a time.Duration.
package daterange

import (
	"iter"
	"regexp"
	"strconv"
	"time"
)

// Day is the fixed size of one calendar step. Ranges know nothing of time
// zones or daylight saving; a day is always 24 hours.
const Day = 24 * time.Hour

// DefaultStep is the step used when a Range is built without WithStep.
const DefaultStep = Day

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Range is a lazy sequence of time.Time values. It holds the current value,
// an optional inclusive bound, and the step between values. A Range is
// consumed in place: each Next call advances it, and once exhausted it stays
// exhausted.
//
// A Range is not safe for concurrent use; each instance owns its state
// exclusively.
type Range struct {
	current time.Time
	bound   Option[time.Time]
	step    time.Duration
}

// RangeOption configures a Range under construction.
type RangeOption func(*Range) error

// WithBound makes the range inclusive-bounded: values are produced up to
// and including bound.
func WithBound(bound time.Time) RangeOption {
	return func(r *Range) error {
		r.bound = Some(bound)
		return nil
	}
}

// WithStep sets the step between produced values. Accepted forms:
//
//   - time.Duration: used as-is;
//   - int or int64: a count of days;
//   - a string of digits: a count of days;
//   - any other string: parsed with ParseDelta.
//
// Anything else fails construction with an InvalidStep error. A failed
// ParseDelta propagates its own error.
func WithStep(step any) RangeOption {
	return func(r *Range) error {
		resolved, err := resolveStep(step)
		if err != nil {
			return err
		}
		r.step = resolved
		return nil
	}
}

// NewRange creates a Range starting at start. Without options the range is
// unbounded and steps by one day.
//
// Caveat: if start is a date-only value (midnight) and the step resolves to
// zero, the range yields the same value forever.
func NewRange(start time.Time, opts ...RangeOption) (*Range, error) {
	r := &Range{
		current: start,
		bound:   None[time.Time](),
		step:    DefaultStep,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// resolveStep converts the accepted step forms to a time.Duration. Parse
// failures from delta specs surface directly rather than collapsing into a
// generic type error.
func resolveStep(step any) (time.Duration, error) {
	switch s := step.(type) {
	case time.Duration:
		return s, nil
	case int:
		return time.Duration(s) * Day, nil
	case int64:
		return time.Duration(s) * Day, nil
	case string:
		if digitsOnly.MatchString(s) {
			days, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return 0, InvalidStep(step)
			}
			return time.Duration(days) * Day, nil
		}
		return ParseDelta(s)
	default:
		return 0, InvalidStep(step)
	}
}

// HasNext reports whether the stop condition still holds: always true for
// unbounded ranges, current ≤ bound for bounded ones.
func (r *Range) HasNext() bool {
	if r.bound.IsNone() {
		return true
	}
	return !r.current.After(r.bound.Unwrap())
}

// Next returns the current value and advances the range by its step. Once
// the current value passes the bound, Next returns ErrExhausted on this and
// every subsequent call.
func (r *Range) Next() (time.Time, error) {
	if !r.HasNext() {
		return time.Time{}, ErrExhausted
	}
	current := r.current
	r.current = r.current.Add(r.step)
	return current, nil
}

// Peek returns the value the next call to Next would produce, without
// advancing, or None if the range is exhausted.
func (r *Range) Peek() Option[time.Time] {
	if !r.HasNext() {
		return None[time.Time]()
	}
	return Some(r.current)
}

// Step returns the step between produced values.
func (r *Range) Step() time.Duration {
	return r.step
}

// Bound returns the inclusive bound, or None for an unbounded range.
func (r *Range) Bound() Option[time.Time] {
	return r.bound
}

// All returns an iterator over the remaining values, consuming the range as
// it goes. For unbounded ranges the sequence is infinite; combine with Take
// or break out of the loop.
func (r *Range) All() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for r.HasNext() {
			v, err := r.Next()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Take consumes and returns at most n values.
func (r *Range) Take(n int) []time.Time {
	result := make([]time.Time, 0, n)
	for i := 0; i < n && r.HasNext(); i++ {
		v, err := r.Next()
		if err != nil {
			break
		}
		result = append(result, v)
	}
	return result
}

// Collect consumes a bounded range and returns all remaining values.
// Ranges that cannot exhaust — unbounded ones, or bounded ones whose step is
// zero or negative — return an Unbounded error instead of never returning.
func (r *Range) Collect() ([]time.Time, error) {
	if r.bound.IsNone() || r.step <= 0 {
		return nil, Unbounded("Collect")
	}
	var result []time.Time
	for r.HasNext() {
		v, err := r.Next()
		if err != nil {
			break
		}
		result = append(result, v)
	}
	return result, nil
}
