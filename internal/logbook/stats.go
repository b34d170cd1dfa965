package logbook

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// DayStatistics summarises worked and paused time for a single reference day.
type DayStatistics struct {
	HoursUntilNow                 float64
	HoursUntilNowWithPauses       float64
	HoursUntilLastEntry           float64
	HoursUntilLastEntryWithPauses float64
	PausedHours                   float64
	PausedMinutes                 int

	TimeStart              string
	TimeUntilNowStop       string
	TimeUntilLastEntryStop string

	// Rows holds the raw lines of the day ordered by timestamp.
	Rows []string
}

// NoTime is shown in place of a clock time that does not exist for the day.
const NoTime = "--:--"

// DayEntry pairs a raw log line with its parsed row.
type DayEntry struct {
	Line string
	Row  Row
}

// ComputeDayStatistics walks every row logged on now's calendar day and
// derives elapsed time until now and until the last real entry, with and
// without pauses. Malformed rows are skipped and never cause an error.
func ComputeDayStatistics(lines []string, lunchMinutes int, now time.Time) DayStatistics {
	rows := DayEntries(lines, now)
	if len(rows) == 0 {
		return DayStatistics{Rows: []string{}}
	}

	var (
		first         = rows[0].Row.Date
		last          time.Time
		hasLast       bool
		pauseStart    time.Time
		pausePending  bool
		pausedMinutes int
		dayLines      = make([]string, 0, len(rows))
	)

	closePause := func(stop time.Time) {
		pausedMinutes += max(minutesBetween(stop, pauseStart), 0)
		pausePending = false
	}

	for _, entry := range rows {
		row := entry.Row
		switch row.Kind {
		case KindPauseStart:
			// An earlier unclosed pause is dropped; the most recent open wins.
			pauseStart = row.Date
			pausePending = true
		case KindPauseStop:
			if pausePending {
				closePause(row.Date)
			}
		case KindPauseSingle:
			if row.Span != nil {
				pausedMinutes += row.Span.TotalMinutes()
			}
		default:
			last = row.Date
			hasLast = true
		}
		dayLines = append(dayLines, entry.Line)
	}

	if pausePending {
		closePause(now)
	}

	untilNow := minutesBetween(now, first) - lunchMinutes
	stats := DayStatistics{
		HoursUntilNow:           clampHours(untilNow),
		HoursUntilNowWithPauses: clampHours(untilNow - pausedMinutes),
		PausedHours:             roundHours(float64(pausedMinutes) / 60),
		PausedMinutes:           pausedMinutes,
		TimeStart:               clock(first),
		TimeUntilNowStop:        clock(now),
		TimeUntilLastEntryStop:  NoTime,
		Rows:                    dayLines,
	}

	if hasLast {
		untilLast := minutesBetween(last, first) - lunchMinutes
		stats.HoursUntilLastEntry = clampHours(untilLast)
		stats.HoursUntilLastEntryWithPauses = clampHours(untilLast - pausedMinutes)
		stats.TimeUntilLastEntryStop = clock(last)
	}

	return stats
}

// DayEntries returns the parseable rows dated on day's calendar date, ordered
// by full timestamp. Rows sharing a timestamp keep their order in the file.
func DayEntries(lines []string, day time.Time) []DayEntry {
	var entries []DayEntry
	for _, line := range lines {
		row, ok := ParseRow(line)
		if !ok || !SameDay(row.Date, day) {
			continue
		}
		entries = append(entries, DayEntry{Line: line, Row: row})
	}
	sortEntries(entries)
	return entries
}

// SortRows orders log lines by timestamp, dropping anything that does not parse.
func SortRows(lines []string) []string {
	var entries []DayEntry
	for _, line := range lines {
		if row, ok := ParseRow(line); ok {
			entries = append(entries, DayEntry{Line: line, Row: row})
		}
	}
	sortEntries(entries)

	sorted := make([]string, 0, len(entries))
	for _, entry := range entries {
		sorted = append(sorted, entry.Line)
	}
	return sorted
}

func sortEntries(entries []DayEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Row.Date.Before(entries[j].Row.Date)
	})
}

// SameDay compares the calendar date only; time of day is ignored.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// minutesBetween returns whole minutes from b to a, truncated toward zero.
func minutesBetween(a, b time.Time) int {
	return int(a.Sub(b) / time.Minute)
}

func clampHours(minutes int) float64 {
	return max(roundHours(float64(minutes)/60), 0)
}

func roundHours(value float64) float64 {
	return math.Round(value*100) / 100
}

func clock(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
