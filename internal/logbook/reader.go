package logbook

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/faizmokh/stint/internal/files"
)

// Reader loads the log file backing a files.Manager.
type Reader struct {
	manager *files.Manager
}

// NewReader wires a reader using the shared files.Manager.
func NewReader(manager *files.Manager) *Reader {
	return &Reader{manager: manager}
}

// Lines returns every line of the log in file order. A missing log reads as empty.
func (r *Reader) Lines(ctx context.Context) ([]string, error) {
	if r == nil || r.manager == nil {
		return nil, errors.New("reader not initialized with file manager")
	}

	data, err := os.ReadFile(r.manager.LogPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	return splitLines(string(data)), nil
}

// Last returns the last parseable row of the log.
func (r *Reader) Last(ctx context.Context) (Row, bool, error) {
	lines, err := r.Lines(ctx)
	if err != nil {
		return Row{}, false, err
	}
	row, ok := LastRow(lines)
	return row, ok, nil
}

// Day computes the statistics for the calendar day of now.
func (r *Reader) Day(ctx context.Context, lunchMinutes int, now time.Time) (DayStatistics, error) {
	lines, err := r.Lines(ctx)
	if err != nil {
		return DayStatistics{}, err
	}
	return ComputeDayStatistics(lines, lunchMinutes, now), nil
}

// Entries returns the parsed rows of the calendar day of date.
func (r *Reader) Entries(ctx context.Context, date time.Time) ([]DayEntry, error) {
	lines, err := r.Lines(ctx)
	if err != nil {
		return nil, err
	}
	return DayEntries(lines, date), nil
}

func splitLines(input string) []string {
	if input == "" {
		return []string{}
	}
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	// Remove the trailing empty element produced by Split when the input ends with a newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
