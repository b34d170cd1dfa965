package logbook

import "errors"

// ErrEmptyLog is returned when a removal targets a log without entries.
var ErrEmptyLog = errors.New("log has no entries")

// ErrInvalidTimeQualifier indicates a time span token with an unknown unit suffix.
var ErrInvalidTimeQualifier = errors.New("invalid time qualifier")

// ErrMissingTimeValue indicates a time span token with a unit but no digits.
var ErrMissingTimeValue = errors.New("missing time value")
