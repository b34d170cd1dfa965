package logbook

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseTimeSpan reads tokens such as "45min", "30m" or "2h". The unit is
// whatever remains after removing the digits and the value is the digits alone.
func ParseTimeSpan(token string) (TimeSpan, error) {
	suffix := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, token)
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, token)

	isHour := suffix == "h"
	isMinute := suffix == "m" || suffix == "min"
	if !isHour && !isMinute {
		return TimeSpan{}, fmt.Errorf("%w for %q", ErrInvalidTimeQualifier, token)
	}
	if digits == "" {
		return TimeSpan{}, fmt.Errorf("%w in %q", ErrMissingTimeValue, token)
	}

	value, err := strconv.Atoi(digits)
	if err != nil {
		return TimeSpan{}, fmt.Errorf("parse time span %q: %w", token, err)
	}

	if isHour {
		return TimeSpan{Hour: value}, nil
	}
	return TimeSpan{Min: value}, nil
}

// TotalMinutes converts the span to minutes.
func (s TimeSpan) TotalMinutes() int {
	return s.Hour*60 + s.Min
}

// String renders the span in the minute form written to the log.
func (s TimeSpan) String() string {
	return fmt.Sprintf("%dmin", s.TotalMinutes())
}
