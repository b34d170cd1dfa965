package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Logger prints user-facing messages with a coloured level prefix. Colours are
// only emitted when the writer is a terminal.
type Logger struct {
	out      io.Writer
	disabled bool

	infoStyle  lipgloss.Style
	warnStyle  lipgloss.Style
	errorStyle lipgloss.Style
}

// New builds a logger writing to w. A quiet logger drops every message except errors.
func New(w io.Writer, quiet bool) *Logger {
	renderer := lipgloss.NewRenderer(w)
	return &Logger{
		out:        w,
		disabled:   quiet,
		infoStyle:  renderer.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		warnStyle:  renderer.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		errorStyle: renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Info reports a regular result.
func (l *Logger) Info(format string, args ...any) {
	l.print(l.infoStyle, "[INFO]", format, args...)
}

// Warn reports something the user may want to fix.
func (l *Logger) Warn(format string, args ...any) {
	l.print(l.warnStyle, "[WARN]", format, args...)
}

// Error reports a failure. It is printed even when the logger is quiet.
func (l *Logger) Error(format string, args ...any) {
	if l == nil {
		return
	}
	fmt.Fprintf(l.out, "%s %s\n", l.errorStyle.Render("[ERROR]"), fmt.Sprintf(format, args...))
}

// Raw prints a line without any prefix, such as a log row.
func (l *Logger) Raw(line string) {
	if l == nil || l.disabled {
		return
	}
	fmt.Fprintln(l.out, line)
}

// Writer returns the destination of the logger.
func (l *Logger) Writer() io.Writer {
	return l.out
}

func (l *Logger) print(style lipgloss.Style, prefix, format string, args ...any) {
	if l == nil || l.disabled {
		return
	}
	fmt.Fprintf(l.out, "%s %s\n", style.Render(prefix), fmt.Sprintf(format, args...))
}
