package logbook

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faizmokh/stint/internal/files"
)

// Writer appends and removes rows. Every mutation copies the log to the
// backup directory first and then rewrites the whole file.
type Writer struct {
	manager *files.Manager
	reader  *Reader
}

// NewWriter wires the dependencies required to mutate the log file.
func NewWriter(manager *files.Manager) *Writer {
	return &Writer{manager: manager, reader: NewReader(manager)}
}

// Append writes row at the end of the log, preceded by a separator when at
// falls on a different day than the last row.
func (w *Writer) Append(ctx context.Context, row string, at time.Time) error {
	lines, err := w.load(ctx)
	if err != nil {
		return err
	}
	return w.save(AppendRow(lines, row, at))
}

// RemoveLast deletes the last logical entry and returns the removed line.
func (w *Writer) RemoveLast(ctx context.Context) (string, error) {
	lines, err := w.load(ctx)
	if err != nil {
		return "", err
	}

	remaining, removed, err := RemoveLast(lines)
	if err != nil {
		return "", err
	}
	return removed, w.save(remaining)
}

func (w *Writer) load(ctx context.Context) ([]string, error) {
	if w == nil || w.manager == nil {
		return nil, fmt.Errorf("writer not initialized with file manager")
	}

	if _, err := w.manager.EnsureLogFile(); err != nil {
		return nil, err
	}
	if _, err := w.manager.Backup(); err != nil {
		return nil, fmt.Errorf("backup log: %w", err)
	}
	return w.reader.Lines(ctx)
}

func (w *Writer) save(lines []string) error {
	return writeLines(w.manager.LogPath(), lines)
}

func writeLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "stint-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	content := strings.Join(lines, "\n")
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err == nil {
		if err := os.Chmod(temp.Name(), info.Mode()); err != nil {
			return err
		}
	}

	return os.Rename(temp.Name(), path)
}
