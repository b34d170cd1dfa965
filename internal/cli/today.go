package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/faizmokh/stint/internal/logbook"
)

func newStatusCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's hours so far.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(ctx, cmd)
		},
	}
}

func (a *app) runStatus(ctx context.Context, cmd *cobra.Command) error {
	stats, err := logbook.NewReader(a.manager).Day(ctx, a.lunchMinutes(), a.clock())
	if err != nil {
		return err
	}

	a.logger(cmd).Info(
		"Today's hours so far: until last entry %s, until now %s, pauses %shrs",
		formatHours(stats.HoursUntilLastEntryWithPauses),
		formatHours(stats.HoursUntilNowWithPauses),
		formatHours(stats.PausedHours),
	)
	return nil
}

func newListCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [YYYY-MM-DD[ HH:MM]]",
		Short: "Show the hours and rows of a day.",
		Long:  "list reports today, or the given reference date, with pause and lunch deductions applied.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.logger(cmd)

			value := joinArgs(args)
			ref, relative, err := resolveReference(a.clock(), value)
			if err != nil {
				return err
			}
			if value != "" {
				log.Info("Evaluating in reference to date %s", ref.Format(logbook.DateLayout))
			}

			lunch := a.lunchMinutes()
			stats, err := logbook.NewReader(a.manager).Day(ctx, lunch, ref)
			if err != nil {
				return err
			}

			if len(stats.Rows) == 0 {
				log.Info("No rows for %s", ref.Format("2006-01-02"))
				return nil
			}

			if relative {
				log.Info("Hours from %s to %s: %s (current time)",
					stats.TimeStart, stats.TimeUntilNowStop, formatHours(stats.HoursUntilNowWithPauses))
			}
			log.Info("Hours from %s to %s: %s (last entry)",
				stats.TimeStart, stats.TimeUntilLastEntryStop, formatHours(stats.HoursUntilLastEntryWithPauses))

			if lunch > 0 {
				log.Info("Lunch time: %d minutes taken into account", lunch)
			}
			if stats.PausedHours > 0 {
				if relative {
					log.Info("Paused time: %s hours taken into account (%s until now w/o pauses)",
						formatHours(stats.PausedHours), formatHours(stats.HoursUntilNow))
				} else {
					log.Info("Paused time: %s hours taken into account", formatHours(stats.PausedHours))
				}
			}

			log.Info("Rows today:")
			for _, row := range stats.Rows {
				log.Raw(row)
			}
			return nil
		},
	}
}
