// Package datekey buckets timestamps into UTC calendar days.
package datekey

import (
	"fmt"
	"iter"
	"time"
)

// Layout is the canonical day key format.
const Layout = "2006-01-02"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant. Used by tests and the CLI.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T.UTC() }

// Key is a YYYY-MM-DD calendar day in UTC.
type Key string

// FromTime returns the day key of t after normalizing to UTC.
func FromTime(t time.Time) Key {
	return Key(t.UTC().Format(Layout))
}

// Today returns the current day key according to c.
func Today(c Clock) Key {
	return FromTime(c.Now())
}

// Parse validates s as a day key.
func Parse(s string) (Key, error) {
	if _, err := time.Parse(Layout, s); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Key(s), nil
}

// ParseOr parses s, falling back to def when s is empty.
func ParseOr(s string, def Key) (Key, error) {
	if s == "" {
		return def, nil
	}
	return Parse(s)
}

// ParseTimestamp accepts an RFC 3339 timestamp or a bare day key (midnight UTC).
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(Layout, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q, expected ISO-8601", s)
}

// Time returns midnight UTC of the day. An invalid key yields the zero time.
func (k Key) Time() time.Time {
	t, err := time.Parse(Layout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays shifts the key by n calendar days.
func (k Key) AddDays(n int) Key {
	return FromTime(k.Time().AddDate(0, 0, n))
}

// Weekday returns the abbreviated weekday name (Mon, Tue, ...).
func (k Key) Weekday() string {
	return k.Time().Format("Mon")
}

func (k Key) String() string { return string(k) }

// Backward yields at most n days starting at from and walking into the past.
func Backward(from Key, n int) iter.Seq[Key] {
	return walk(from, n, -1)
}

// Forward yields at most n days starting at from and walking into the future.
func Forward(from Key, n int) iter.Seq[Key] {
	return walk(from, n, 1)
}

func walk(from Key, n, step int) iter.Seq[Key] {
	return func(yield func(Key) bool) {
		day := from
		for i := 0; i < n; i++ {
			if !yield(day) {
				return
			}
			day = day.AddDays(step)
		}
	}
}

// Window returns the n days ending at last, oldest first.
func Window(last Key, n int) []Key {
	days := make([]Key, 0, n)
	for day := range Forward(last.AddDays(-(n - 1)), n) {
		days = append(days, day)
	}
	return days
}
