package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/stint/internal/logbook"
)

func newAddCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> [HH:MM] <description...>",
		Short: "Log a row for today.",
		Long:  "add appends a row under the given category. The time defaults to now.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdd(ctx, cmd, args)
		},
	}
}

func (a *app) runAdd(ctx context.Context, cmd *cobra.Command, args []string) error {
	params, err := parseLogArgs(a.config, args)
	if err != nil {
		return err
	}
	if params.Desc == "" {
		return ErrDescriptionRequired
	}

	at, err := resolveTime(a.clock(), params.Time)
	if err != nil {
		return err
	}

	row := logbook.FormatRow(logbook.RowSpec{Category: params.Category, Date: at, Desc: params.Desc})
	return a.append(ctx, cmd, row, at)
}

func newRemoveCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove"},
		Short:   "Remove the last logged row.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := logbook.NewWriter(a.manager).RemoveLast(ctx)
			if err != nil {
				if errors.Is(err, logbook.ErrEmptyLog) {
					a.logger(cmd).Warn("Nothing to remove")
					return nil
				}
				return err
			}

			a.logger(cmd).Info("REMOVED %s", removed)
			return nil
		},
	}
}

func newStartCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "start <category> [HH:MM] <activity...>",
		Short: "Start an activity, stopping the running one first.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseLogArgs(a.config, args)
			if err != nil {
				return err
			}
			if params.Desc == "" {
				return fmt.Errorf("activity name: %w", ErrDescriptionRequired)
			}

			at, err := resolveTime(a.clock(), params.Time)
			if err != nil {
				return err
			}

			last, ok, err := logbook.NewReader(a.manager).Last(ctx)
			if err != nil {
				return err
			}
			if ok && last.Kind == logbook.KindActivityStart {
				a.logger(cmd).Info("Activity %s already started -> stopping", last.Label)
				if err := a.stopActivity(ctx, cmd, last, at); err != nil {
					return err
				}
			}

			a.logger(cmd).Info("Starting activity %s", params.Desc)
			row := logbook.FormatRow(logbook.RowSpec{
				Category: params.Category,
				Date:     at,
				Desc:     params.Desc,
				Prefix:   logbook.KeywordStart,
			})
			return a.append(ctx, cmd, row, at)
		},
	}
}

func newStopCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stop [HH:MM]",
		Short: "Stop the running activity.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, _, err := splitClock(args)
			if err != nil {
				return err
			}
			at, err := resolveTime(a.clock(), clock)
			if err != nil {
				return err
			}

			last, ok, err := logbook.NewReader(a.manager).Last(ctx)
			if err != nil {
				return err
			}
			if !ok || last.Kind != logbook.KindActivityStart {
				a.logger(cmd).Info("No activity running")
				return nil
			}

			a.logger(cmd).Info("Stopping activity %s", last.Label)
			return a.stopActivity(ctx, cmd, last, at)
		},
	}
}

// stopActivity closes the activity opened by start on the same category.
func (a *app) stopActivity(ctx context.Context, cmd *cobra.Command, start logbook.Row, at time.Time) error {
	row := logbook.FormatRow(logbook.RowSpec{
		Category: start.Category,
		Date:     at,
		Desc:     start.Label,
		Prefix:   logbook.KeywordStop,
	})
	return a.append(ctx, cmd, row, at)
}

func newPauseCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pause [category] [HH:MM] [label...]",
		Short: "Start a pause, or end the running one.",
		Long:  "pause writes PAUSE_START, or PAUSE_STOP when the last row opened a pause.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parsePauseArgs(a.config, args)
			if err != nil {
				return err
			}
			at, err := resolveTime(a.clock(), params.Time)
			if err != nil {
				return err
			}

			last, ok, err := logbook.NewReader(a.manager).Last(ctx)
			if err != nil {
				return err
			}

			spec := logbook.RowSpec{Category: params.Category, Date: at, Desc: params.Desc, Prefix: logbook.KeywordPauseStart}
			if ok && last.Kind == logbook.KindPauseStart {
				spec.Desc = last.Label
				spec.Prefix = logbook.KeywordPauseStop
			}
			return a.append(ctx, cmd, logbook.FormatRow(spec), at)
		},
	}
}

func newPauseSingleCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pause-single [category] [HH:MM] <span> [label...]",
		Short: "Log a pause of fixed length such as 30min or 1h.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parsePauseArgs(a.config, args)
			if err != nil {
				return err
			}
			if params.Desc == "" {
				return fmt.Errorf("pause length: %w", ErrDescriptionRequired)
			}

			token, label := splitWord(params.Desc)
			span, err := logbook.ParseTimeSpan(token)
			if err != nil {
				return err
			}

			at, err := resolveTime(a.clock(), params.Time)
			if err != nil {
				return err
			}

			row := logbook.FormatRow(logbook.RowSpec{
				Category: params.Category,
				Date:     at,
				Desc:     label,
				Prefix:   logbook.KeywordPause + " " + span.String(),
			})
			return a.append(ctx, cmd, row, at)
		},
	}
}
