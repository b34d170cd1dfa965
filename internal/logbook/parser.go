package logbook

import (
	"strings"
	"time"
)

// DateLayout is the timestamp format written at the start of every row.
const DateLayout = "2006-01-02 15:04"

var dateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// IsLogRow reports whether line carries a log entry rather than a separator or blank line.
func IsLogRow(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	return strings.Contains(line, ";")
}

// IsSeparator reports whether line is the day separator marker.
func IsSeparator(line string) bool {
	return strings.TrimSpace(line) == Separator
}

// ParseRow splits a log line into its date, category and description. It
// reports false for separators, blank lines and rows whose date cannot be parsed.
func ParseRow(line string) (Row, bool) {
	if !IsLogRow(line) {
		return Row{}, false
	}

	fields := strings.SplitN(line, ";", 3)
	if len(fields) != 3 {
		return Row{}, false
	}

	date, ok := ParseDate(strings.TrimSpace(fields[0]))
	if !ok {
		return Row{}, false
	}

	desc := strings.TrimSpace(fields[2])
	kind, label, span := Classify(desc)

	return Row{
		Date:     date,
		Category: strings.ToUpper(strings.TrimSpace(fields[1])),
		Desc:     desc,
		Kind:     kind,
		Label:    label,
		Span:     span,
	}, true
}

// ParseDate parses a row timestamp in local time.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Classify derives the row kind from the leading keyword of desc and returns
// the remaining label. For single pauses the second word is the duration token.
func Classify(desc string) (Kind, string, *TimeSpan) {
	keyword, rest := splitFirstWord(desc)
	rest = cleanLabel(rest)

	switch keyword {
	case KeywordStart:
		return KindActivityStart, rest, nil
	case KeywordStop:
		return KindActivityStop, rest, nil
	case KeywordPauseStart:
		return KindPauseStart, rest, nil
	case KeywordPauseStop:
		return KindPauseStop, rest, nil
	case KeywordPause:
		token, label := splitFirstWord(rest)
		label = cleanLabel(label)
		span, err := ParseTimeSpan(token)
		if err != nil {
			return KindPauseSingle, label, nil
		}
		return KindPauseSingle, label, &span
	}

	return KindPlain, cleanLabel(desc), nil
}

func cleanLabel(label string) string {
	if label == EmptyDescription {
		return ""
	}
	return label
}

func splitFirstWord(value string) (string, string) {
	value = strings.TrimSpace(value)
	idx := strings.IndexFunc(value, isSpace)
	if idx < 0 {
		return value, ""
	}
	return value[:idx], strings.TrimSpace(value[idx:])
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// RowSpec describes a row to be written. Time, when set, must already be in
// DateLayout and takes precedence over Date.
type RowSpec struct {
	Category string
	Date     time.Time
	Time     string
	Desc     string
	Prefix   string
	Postfix  string
}

// FormatRow renders spec as "TIME; CATEGORY; [prefix ]desc[ postfix]".
func FormatRow(spec RowSpec) string {
	stamp := spec.Time
	if stamp == "" {
		stamp = spec.Date.Format(DateLayout)
	}

	desc := strings.TrimSpace(spec.Desc)
	if desc == "" {
		desc = EmptyDescription
	}

	parts := make([]string, 0, 3)
	for _, part := range []string{spec.Prefix, desc, spec.Postfix} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	var builder strings.Builder
	builder.Grow(len(stamp) + len(spec.Category) + len(desc) + 16)
	builder.WriteString(stamp)
	builder.WriteString("; ")
	builder.WriteString(strings.ToUpper(strings.TrimSpace(spec.Category)))
	builder.WriteString("; ")
	builder.WriteString(strings.Join(parts, " "))
	return builder.String()
}
