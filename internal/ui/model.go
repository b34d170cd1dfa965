package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/stint/internal/files"
	"github.com/faizmokh/stint/internal/logbook"
)

// refreshInterval keeps the "until now" figures current while the dashboard is open.
const refreshInterval = time.Minute

// Options configures the dashboard.
type Options struct {
	// Date is the day shown first. Zero means today.
	Date          time.Time
	LunchMinutes  int
	PauseCategory string
	// Changes signals that the log file changed on disk. It may be nil.
	Changes <-chan struct{}
	Now     func() time.Time
}

// Model owns Bubble Tea state for the dashboard.
type Model struct {
	ctx    context.Context
	reader *logbook.Reader
	writer *logbook.Writer
	opts   Options

	currentDate time.Time
	stats       logbook.DayStatistics
	entries     []logbook.DayEntry
	selected    int

	mode mode
	keys keyMap
	help help.Model

	loading    bool
	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeConfirmRemove
)

type dayLoadedMsg struct {
	date    time.Time
	stats   logbook.DayStatistics
	entries []logbook.DayEntry
	err     error
}

type writeResultMsg struct {
	action string
	row    string
	err    error
}

type tickMsg time.Time

type fileChangedMsg struct{}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, manager *files.Manager, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.PauseCategory == "" {
		opts.PauseCategory = "MISC"
	}

	m := Model{
		ctx:        ctx,
		reader:     logbook.NewReader(manager),
		writer:     logbook.NewWriter(manager),
		opts:       opts,
		mode:       modeNormal,
		keys:       keys,
		help:       help.New(),
		loading:    true,
		statusLine: "Loading today's rows...",
	}
	m.currentDate = m.today()
	if !opts.Date.IsZero() {
		m.currentDate = time.Date(opts.Date.Year(), opts.Date.Month(), opts.Date.Day(), 0, 0, 0, 0, time.Local)
	}
	return m
}

// Init loads the current day and starts the refresh loops.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadDayCmd(m.currentDate), tickCmd(), m.waitForChangeCmd())
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case dayLoadedMsg:
		return m.handleDayLoaded(msg)
	case writeResultMsg:
		return m.handleWriteResult(msg)
	case tickMsg:
		if m.isToday() {
			return m, tea.Batch(m.loadDayCmd(m.currentDate), tickCmd())
		}
		return m, tickCmd()
	case fileChangedMsg:
		m.statusLine = "Log changed on disk, reloading..."
		return m, tea.Batch(m.loadDayCmd(m.currentDate), m.waitForChangeCmd())
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeConfirmRemove {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.mode = modeNormal
			m.statusLine = "Removing last row..."
			return m, m.removeLastCmd()
		case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
			m.mode = modeNormal
			m.statusLine = "Remove cancelled."
			return m, nil
		default:
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		return m.gotoDate(m.currentDate.AddDate(0, 0, -1))
	case key.Matches(msg, m.keys.Next):
		return m.gotoDate(m.currentDate.AddDate(0, 0, 1))
	case key.Matches(msg, m.keys.Today):
		return m.gotoDate(m.today())
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.statusLine = "Reloading..."
		return m, m.loadDayCmd(m.currentDate)
	case key.Matches(msg, m.keys.Pause):
		if !m.isToday() {
			m.errorLine = "Pauses can only be toggled on today's log."
			return m, nil
		}
		return m, m.togglePauseCmd()
	case key.Matches(msg, m.keys.Remove):
		m.mode = modeConfirmRemove
		m.errorLine = ""
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) gotoDate(date time.Time) (tea.Model, tea.Cmd) {
	m.currentDate = date
	m.selected = 0
	m.loading = true
	m.errorLine = ""
	m.statusLine = fmt.Sprintf("Loading %s...", date.Format("2006-01-02"))
	return m, m.loadDayCmd(date)
}

func (m Model) handleDayLoaded(msg dayLoadedMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results for dates we no longer display.
	if !logbook.SameDay(m.currentDate, msg.date) {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load %s: %v", msg.date.Format("2006-01-02"), msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.errorLine = ""
	m.stats = msg.stats
	m.entries = msg.entries
	if m.selected >= len(m.entries) {
		m.selected = max(len(m.entries)-1, 0)
	}
	if len(m.entries) == 0 {
		m.statusLine = fmt.Sprintf("%s has no rows.", msg.date.Format("2006-01-02"))
	} else {
		m.statusLine = fmt.Sprintf("Loaded %d row%s.", len(m.entries), plural(len(m.entries)))
	}
	return m, nil
}

func (m Model) handleWriteResult(msg writeResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, logbook.ErrEmptyLog) {
			m.errorLine = "Nothing to remove."
		} else {
			m.errorLine = fmt.Sprintf("%s failed: %v", msg.action, msg.err)
		}
		m.statusLine = ""
		return m, nil
	}

	m.errorLine = ""
	m.statusLine = fmt.Sprintf("%s: %s", msg.action, msg.row)
	return m, m.loadDayCmd(m.currentDate)
}

func (m Model) loadDayCmd(date time.Time) tea.Cmd {
	reader := m.reader
	ctx := m.ctx
	ref := m.reference(date)
	lunch := m.opts.LunchMinutes
	return func() tea.Msg {
		lines, err := reader.Lines(ctx)
		if err != nil {
			return dayLoadedMsg{date: date, err: err}
		}
		return dayLoadedMsg{
			date:    date,
			stats:   logbook.ComputeDayStatistics(lines, lunch, ref),
			entries: logbook.DayEntries(lines, ref),
		}
	}
}

func (m Model) togglePauseCmd() tea.Cmd {
	reader := m.reader
	writer := m.writer
	ctx := m.ctx
	category := m.opts.PauseCategory
	at := m.opts.Now().In(time.Local).Truncate(time.Minute)
	return func() tea.Msg {
		last, ok, err := reader.Last(ctx)
		if err != nil {
			return writeResultMsg{action: "Pause", err: err}
		}

		spec := logbook.RowSpec{Category: category, Date: at, Prefix: logbook.KeywordPauseStart}
		action := "Paused"
		if ok && last.Kind == logbook.KindPauseStart {
			spec.Desc = last.Label
			spec.Prefix = logbook.KeywordPauseStop
			action = "Resumed"
		}

		row := logbook.FormatRow(spec)
		if err := writer.Append(ctx, row, at); err != nil {
			return writeResultMsg{action: action, err: err}
		}
		return writeResultMsg{action: action, row: row}
	}
}

func (m Model) removeLastCmd() tea.Cmd {
	writer := m.writer
	ctx := m.ctx
	return func() tea.Msg {
		removed, err := writer.RemoveLast(ctx)
		return writeResultMsg{action: "Removed", row: removed, err: err}
	}
}

func (m Model) waitForChangeCmd() tea.Cmd {
	changes := m.opts.Changes
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(m.currentDate.Format("Monday, 02 January 2006")))
	b.WriteString("\n\n")

	if m.loading && len(m.entries) == 0 {
		b.WriteString("Loading...\n")
	} else if len(m.entries) == 0 {
		b.WriteString("(no rows)\n")
	} else {
		b.WriteString(m.summaryView())
		b.WriteString("\n")
		for i, entry := range m.entries {
			b.WriteString(m.rowView(i, entry))
			b.WriteByte('\n')
		}
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(styleError.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(styleStatusBar.Render(m.statusLine))
		b.WriteByte('\n')
	}

	if m.mode == modeConfirmRemove {
		b.WriteString("\nRemove the last row of the log? (y/n, Esc to cancel)\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) summaryView() string {
	stats := m.stats
	var b strings.Builder

	line := func(label, value string) {
		b.WriteString(styleLabel.Render(fmt.Sprintf("%-28s", label)))
		b.WriteString(styleHours.Render(value))
		b.WriteByte('\n')
	}

	line(fmt.Sprintf("Until last entry %s-%s", stats.TimeStart, stats.TimeUntilLastEntryStop), hours(stats.HoursUntilLastEntryWithPauses))
	if m.isToday() {
		line(fmt.Sprintf("Until now %s-%s", stats.TimeStart, stats.TimeUntilNowStop), hours(stats.HoursUntilNowWithPauses))
	}
	if stats.PausedMinutes > 0 {
		line("Paused", hours(stats.PausedHours))
	}
	if m.opts.LunchMinutes > 0 {
		line("Lunch", fmt.Sprintf("%d min", m.opts.LunchMinutes))
	}
	return b.String()
}

func (m Model) rowView(index int, entry logbook.DayEntry) string {
	cursor := "  "
	style := styleRowNormal
	if entry.Row.Kind.IsPause() {
		style = styleRowPause
	}
	if index == m.selected {
		cursor = "> "
		style = styleRowSelected
	}

	desc := entry.Row.Desc
	return cursor + style.Render(fmt.Sprintf("%s  %-8s %s", entry.Row.Date.Format("15:04"), entry.Row.Category, desc))
}

// reference is the instant statistics are computed against: now for today,
// the start of the day otherwise.
func (m Model) reference(date time.Time) time.Time {
	now := m.opts.Now().In(time.Local)
	if logbook.SameDay(date, now) {
		return now
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
}

func (m Model) today() time.Time {
	now := m.opts.Now().In(time.Local)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (m Model) isToday() bool {
	return logbook.SameDay(m.currentDate, m.opts.Now().In(time.Local))
}

func hours(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64) + "h"
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
