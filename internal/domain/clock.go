package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a clock time at minute resolution, stored as minutes
// since midnight in [0, 1440).
type TimeOfDay int

// Duration is a non-negative elapsed time in whole minutes. Unlike
// TimeOfDay it is not bounded by a day; a parsed "30:00" stays 30 hours.
type Duration int

// NewTimeOfDay builds a TimeOfDay from an hour and minute, carrying
// excess minutes into hours and wrapping hours modulo 24.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	total := hour*60 + minute
	total %= minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return TimeOfDay(total)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String renders the time as zero-padded 24-hour "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// NewDuration builds a Duration from hours and minutes, carrying excess
// minutes into hours. Negative inputs clamp to zero.
func NewDuration(hours, minutes int) Duration {
	total := hours*60 + minutes
	if total < 0 {
		total = 0
	}
	return Duration(total)
}

func (d Duration) Hours() int   { return int(d) / 60 }
func (d Duration) Minutes() int { return int(d) % 60 }

// String renders the duration as "hh:mm". Durations of a day or more
// keep their full hour count ("26:15").
func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d", d.Hours(), d.Minutes())
}

// AddDuration returns start + d on the 24-hour clock. Hours wrap past
// midnight; the wrap itself is not reported. Callers that care about a
// date rollover detect it with end < start.
func AddDuration(start TimeOfDay, d Duration) TimeOfDay {
	return TimeOfDay((int(start) + int(d)) % minutesPerDay)
}

// SubtractTimes returns the elapsed duration from start to end on the
// same day. end earlier than start is read as a midnight crossing, so
// the result is always in [0, 24h).
func SubtractTimes(end, start TimeOfDay) Duration {
	diff := (int(end) - int(start) + minutesPerDay) % minutesPerDay
	return Duration(diff)
}

// WrapsMidnight reports whether start plus d crosses a day boundary.
func WrapsMidnight(start TimeOfDay, d Duration) bool {
	return int(start)+int(d) >= minutesPerDay
}

// ParseTimeOfDay parses free-text clock input such as "09:30", "9:30"
// or "23:05". The field is free text in the surrounding UI, so the
// parse normalizes rather than rejects: a minute component of 60 or
// more carries into hours, and hours wrap modulo 24 ("24:10" is
// "00:10"). Only a missing or non-numeric component is an error.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hour, minute, err := splitClock(s)
	if err != nil {
		return 0, fmt.Errorf("time of day %q: %w", s, err)
	}
	return NewTimeOfDay(hour, minute), nil
}

// ParseDuration parses free-text elapsed-time input. Accepted forms:
// "hh:mm" (minutes 60 or more carry into hours, so "01:90" is "02:30")
// and a bare integer, read as minutes ("90" is "01:30"). Negative
// values clamp to zero.
func ParseDuration(s string) (Duration, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.Contains(trimmed, ":") {
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("duration %q: expected hh:mm or minutes", s)
		}
		return NewDuration(0, n), nil
	}
	hours, minutes, err := splitClock(trimmed)
	if err != nil {
		return 0, fmt.Errorf("duration %q: %w", s, err)
	}
	return NewDuration(hours, minutes), nil
}

func splitClock(s string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected hh:mm")
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad hour component")
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad minute component")
	}
	return h, m, nil
}
