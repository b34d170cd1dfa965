package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/stint/internal/config"
	"github.com/faizmokh/stint/internal/console"
	"github.com/faizmokh/stint/internal/files"
	"github.com/faizmokh/stint/internal/logbook"
)

// app carries what every command needs. The root command fills it in once
// flags are parsed; tests build it directly.
type app struct {
	manager    *files.Manager
	config     *config.Config
	configPath string

	configFlag string
	fileFlag   string
	quiet      bool

	now        func() time.Time
	runCommand func(*exec.Cmd) error
}

func newApp() *app {
	return &app{
		now:        time.Now,
		runCommand: (*exec.Cmd).Run,
	}
}

// load reads the configuration and prepares the file manager.
func (a *app) load() error {
	if a.manager != nil {
		return nil
	}

	cfg, used, err := a.loadConfig()
	if err != nil {
		return err
	}

	logFile := a.fileFlag
	if logFile == "" {
		logFile = cfg.File
	}

	var opts []files.Option
	if logFile != "" {
		opts = append(opts, files.WithLogFile(logFile))
	}
	if cfg.BackupDir != "" {
		opts = append(opts, files.WithBackupDir(cfg.BackupDir))
	}

	manager, err := files.NewManager("", opts...)
	if err != nil {
		return err
	}

	a.manager = manager
	a.config = cfg
	a.configPath = used
	return nil
}

// loadConfig treats a --config path that does not exist yet like no config
// at all, so "config create --config PATH" can write it.
func (a *app) loadConfig() (*config.Config, string, error) {
	if a.configFlag != "" {
		expanded, err := files.ExpandHome(a.configFlag)
		if err != nil {
			return nil, "", err
		}
		if _, err := os.Stat(expanded); errors.Is(err, os.ErrNotExist) {
			return config.Default(), "", nil
		}
	}
	return config.Load(a.configFlag)
}

func (a *app) logger(cmd *cobra.Command) *console.Logger {
	return console.New(cmd.OutOrStdout(), a.quiet)
}

func (a *app) clock() time.Time {
	return a.now().In(time.Local).Truncate(time.Minute)
}

func (a *app) lunchMinutes() int {
	if a.config == nil {
		return 0
	}
	return a.config.LunchMinutes
}

// append writes row and echoes it the way every mutating command does.
func (a *app) append(ctx context.Context, cmd *cobra.Command, row string, at time.Time) error {
	if err := logbook.NewWriter(a.manager).Append(ctx, row, at); err != nil {
		return err
	}
	a.logger(cmd).Info("-> %s", row)
	return nil
}

// logParams is the result of reading "<category> [HH:MM] <description...>".
type logParams struct {
	Category string
	Time     string
	Desc     string
}

func parseLogArgs(cfg *config.Config, args []string) (logParams, error) {
	token := ""
	if len(args) > 0 {
		token = args[0]
	}
	category, ok := cfg.ResolveCategory(token)
	if !ok {
		return logParams{}, fmt.Errorf("%w: %s", ErrInvalidCategory, token)
	}

	clock, desc, err := splitClock(args[1:])
	if err != nil {
		return logParams{}, err
	}
	return logParams{Category: category, Time: clock, Desc: desc}, nil
}

// parsePauseArgs is parseLogArgs with an optional category that falls back to
// the configured default.
func parsePauseArgs(cfg *config.Config, args []string) (logParams, error) {
	if len(args) > 0 {
		if _, ok := cfg.ResolveCategory(args[0]); ok {
			return parseLogArgs(cfg, args)
		}
	}

	clock, desc, err := splitClock(args)
	if err != nil {
		return logParams{}, err
	}
	return logParams{Category: cfg.Category(), Time: clock, Desc: desc}, nil
}

// splitClock takes an optional leading HH:MM and joins the rest as description.
func splitClock(args []string) (string, string, error) {
	clock := ""
	if len(args) > 0 && looksLikeClock(args[0]) {
		if _, err := time.Parse("15:04", normalizeClock(args[0])); err != nil {
			return "", "", fmt.Errorf("%w: %s", ErrInvalidTime, args[0])
		}
		clock = normalizeClock(args[0])
		args = args[1:]
	}
	return clock, strings.TrimSpace(strings.Join(args, " ")), nil
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func splitWord(value string) (string, string) {
	first, rest, _ := strings.Cut(strings.TrimSpace(value), " ")
	return first, strings.TrimSpace(rest)
}

func looksLikeClock(value string) bool {
	hour, minute, ok := strings.Cut(value, ":")
	return ok && isDigits(hour) && isDigits(minute)
}

func normalizeClock(value string) string {
	hour, minute, _ := strings.Cut(value, ":")
	if len(hour) == 1 {
		hour = "0" + hour
	}
	return hour + ":" + minute
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// resolveTime places an HH:MM clock on now's calendar day. An empty clock means now.
func resolveTime(now time.Time, clock string) (time.Time, error) {
	if clock == "" {
		return now, nil
	}

	parsed, err := time.ParseInLocation("15:04", clock, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidTime, clock)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), nil
}

// resolveReference parses the optional reference date of list and export.
// It reports whether figures relative to the current time make sense for it.
func resolveReference(now time.Time, value string) (time.Time, bool, error) {
	if strings.TrimSpace(value) == "" {
		return now, true, nil
	}

	ref, ok := logbook.ParseDate(strings.TrimSpace(value))
	if !ok {
		return time.Time{}, false, fmt.Errorf("parse date %q: expected YYYY-MM-DD or YYYY-MM-DD HH:MM", value)
	}
	hasClock := ref.Hour() > 0 || ref.Minute() > 0
	return ref, logbook.SameDay(ref, now) || hasClock, nil
}

func formatHours(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func buildEditorCommand(editorValue, path string) (*exec.Cmd, error) {
	fields := strings.Fields(strings.TrimSpace(editorValue))
	if len(fields) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}

	args := append(fields[1:], path)
	return exec.Command(fields[0], args...), nil
}

func (a *app) openInEditor(cmd *cobra.Command, path string) error {
	editor := a.config.Editor()
	a.logger(cmd).Info("Opening file: %s", path)

	command, err := buildEditorCommand(editor, path)
	if err != nil {
		return err
	}
	command.Stdin = cmd.InOrStdin()
	command.Stdout = cmd.OutOrStdout()
	command.Stderr = cmd.ErrOrStderr()
	if err := a.runCommand(command); err != nil {
		return fmt.Errorf("opening editor failed: %w", err)
	}
	return nil
}
