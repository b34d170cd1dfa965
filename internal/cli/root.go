package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/stint/internal/console"
	"github.com/faizmokh/stint/internal/version"
)

// NewRootCommand creates the top-level Cobra command. Without arguments it
// prints today's status; with arguments it logs a row.
func NewRootCommand(ctx context.Context) *cobra.Command {
	return newRootCommand(ctx, newApp())
}

func newRootCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stint [category] [HH:MM] [description...]",
		Short: "Track working hours in a plain text log from your terminal.",
		Long: `stint appends timestamped rows to a plain text log and sums up the hours of a day.

Rows look like "2025-11-02 09:00; WORK; START feature" and can be edited by hand.`,
		Example: `
  # Today's hours so far
  stint

  # Log a row now, or at a given time
  stint work Reviewed pull requests
  stint work 08:30 Standup

  # Track an activity and pauses
  stint start work feature flag
  stint pause
  stint pause-single 30min lunch
  stint stop
`,
		Version: version.Info(),
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.runStatus(ctx, cmd)
			}
			return a.runAdd(ctx, cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFlag, "config", "", "Config file (default: $STINT_HOME/config.yaml, $HOME/.stint.yaml, ./.stint.yaml)")
	flags.StringVar(&a.fileFlag, "file", "", "Log file override")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "Only print errors")

	cmd.AddCommand(
		newStatusCommand(ctx, a),
		newListCommand(ctx, a),
		newAddCommand(ctx, a),
		newStartCommand(ctx, a),
		newStopCommand(ctx, a),
		newPauseCommand(ctx, a),
		newPauseSingleCommand(ctx, a),
		newRemoveCommand(ctx, a),
		newOpenCommand(ctx, a),
		newConfigCommand(ctx, a),
		newExportCommand(ctx, a),
		newDashCommand(ctx, a),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).ExecuteContext(ctx)
}

// Main is a helper used by cmd/stint/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		console.New(os.Stderr, false).Error("%v", err)
		os.Exit(1)
	}
}
